package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal/auth"
	"github.com/notifique/alert/internal/middleware"
)

func TestAuthorize(t *testing.T) {

	e := makeEchoEngine(middleware.Authorize(auth.Publisher))

	tests := []struct {
		name         string
		scope        string
		expectedCode int
	}{
		{name: "Success - Exact scope", scope: "alerts/publisher", expectedCode: http.StatusOK},
		{name: "Success - One of many scopes", scope: "alerts/user alerts/publisher", expectedCode: http.StatusOK},
		{name: "Fail - No scope", scope: "", expectedCode: http.StatusForbidden},
		{name: "Fail - Other scope", scope: "alerts/user", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/echo", nil)
			req.Header.Set(string(auth.ScopeHeader), tt.scope)
			e.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
