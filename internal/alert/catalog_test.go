package alert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
)

const testCatalog = `
backends:
  - id: email
    title: E-mail
  - id: sms
    title: SMS
alertTypes:
  - id: comment
    title: New comment
    defaults:
      email: true
  - id: security
    title: Security notice
    default: true
    defaults:
      sms: false
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	catalog, err := alert.LoadCatalog(path)
	require.NoError(t, err)

	backends := catalog.Backends()
	require.Len(t, backends, 2)
	assert.Equal(t, alert.BackendID("email"), backends[0].ID)
	assert.Equal(t, alert.BackendID("sms"), backends[1].ID)

	comment, err := catalog.AlertType("comment")
	require.NoError(t, err)
	assert.True(t, comment.GetDefault("email"))
	assert.False(t, comment.GetDefault("sms"))

	security, err := catalog.AlertType("security")
	require.NoError(t, err)
	assert.True(t, security.GetDefault("email"))
	assert.False(t, security.GetDefault("sms"))

	assert.Equal(t, []alert.PrefKey{
		{AlertType: "comment", Backend: "email"},
		{AlertType: "comment", Backend: "sms"},
		{AlertType: "security", Backend: "email"},
		{AlertType: "security", Backend: "sms"},
	}, catalog.Keys())
}

func TestNewCatalogValidation(t *testing.T) {

	email := alert.Backend{ID: "email"}

	tests := []struct {
		name          string
		types         []alert.AlertType
		backends      []alert.Backend
		expectedError string
	}{
		{
			name:          "Fail - Backend without id",
			backends:      []alert.Backend{{Title: "nameless"}},
			expectedError: "invalid alert catalog - backend without id",
		},
		{
			name:          "Fail - Duplicated backend",
			backends:      []alert.Backend{email, email},
			expectedError: "invalid alert catalog - duplicated backend email",
		},
		{
			name:          "Fail - Duplicated alert type",
			types:         []alert.AlertType{{ID: "comment"}, {ID: "comment"}},
			backends:      []alert.Backend{email},
			expectedError: "invalid alert catalog - duplicated alert type comment",
		},
		{
			name: "Fail - Default for unknown backend",
			types: []alert.AlertType{{
				ID:       "comment",
				Defaults: map[alert.BackendID]bool{"pigeon": true},
			}},
			backends:      []alert.Backend{email},
			expectedError: "invalid alert catalog - alert type comment has a default for unknown backend pigeon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := alert.NewCatalog(tt.types, tt.backends)
			assert.ErrorAs(t, err, &internal.InvalidCatalog{})
			assert.EqualError(t, err, tt.expectedError)
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog, err := alert.NewCatalog(nil, []alert.Backend{{ID: "email"}})
	require.NoError(t, err)

	_, err = catalog.Backend("sms")
	assert.ErrorAs(t, err, &internal.UnknownBackend{})

	_, err = catalog.AlertType("comment")
	assert.ErrorAs(t, err, &internal.UnknownAlertType{})

	assert.Empty(t, catalog.Keys())
}
