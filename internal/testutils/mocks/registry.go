package mocks

type MockedRegistry struct {
	*MockPreferenceRegistry
	*MockAlertRegistry
}

func NewMockedRegistry(pr *MockPreferenceRegistry, ar *MockAlertRegistry) *MockedRegistry {

	return &MockedRegistry{
		pr,
		ar,
	}
}
