package testconfig

import "time"

const TestCacheTTL = time.Minute

type TestEngineConfigurator struct{}

func (cfg TestEngineConfigurator) GetVersion() (string, error) {
	return "", nil
}

func (cfg TestEngineConfigurator) GetCacheTTL() (time.Duration, error) {
	return TestCacheTTL, nil
}

func NewTestEngineConfigurator() TestEngineConfigurator {
	return TestEngineConfigurator{}
}
