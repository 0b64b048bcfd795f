package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal/auth"
	"github.com/notifique/alert/internal/middleware"
)

var testSigningKey = []byte("test-signing-key")

func testKeyfunc(t *jwt.Token) (interface{}, error) {
	return testSigningKey, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, key []byte) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)

	if err != nil {
		t.Fatal(err)
	}

	return token
}

func makeEchoEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(handlers...)
	r.GET("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":  c.GetHeader(string(auth.UserHeader)),
			"scope": c.GetHeader(string(auth.ScopeHeader)),
		})
	})

	return r
}

func TestJWTAuthMiddleware(t *testing.T) {

	e := makeEchoEngine(gin.HandlerFunc(middleware.NewJWTAuthMiddleware(testKeyfunc)))

	valid := signToken(t, jwt.MapClaims{"username": "1234", "scope": "alerts/user"}, testSigningKey)
	noScope := signToken(t, jwt.MapClaims{"username": "1234"}, testSigningKey)
	noUser := signToken(t, jwt.MapClaims{"scope": "alerts/user"}, testSigningKey)
	wrongKey := signToken(t, jwt.MapClaims{"username": "1234", "scope": "alerts/user"}, []byte("other"))

	tests := []struct {
		name          string
		authorization string
		spoofedUser   string
		expectedCode  int
		expectedBody  string
	}{
		{
			name:         "Success - Anonymous request",
			expectedCode: http.StatusOK,
			expectedBody: `{"scope":"","user":""}`,
		},
		{
			name:         "Success - Anonymous request drops spoofed identity",
			spoofedUser:  "admin",
			expectedCode: http.StatusOK,
			expectedBody: `{"scope":"","user":""}`,
		},
		{
			name:          "Success - Valid token",
			authorization: "Bearer " + valid,
			spoofedUser:   "admin",
			expectedCode:  http.StatusOK,
			expectedBody:  `{"scope":"alerts/user","user":"1234"}`,
		},
		{
			name:          "Fail - Not a bearer token",
			authorization: "Basic dXNlcjpwYXNz",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "Fail - Signed with another key",
			authorization: "Bearer " + wrongKey,
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "Fail - Missing scope",
			authorization: "Bearer " + noScope,
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "Fail - Missing username",
			authorization: "Bearer " + noUser,
			expectedCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/echo", nil)

			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			if tt.spoofedUser != "" {
				req.Header.Set(string(auth.UserHeader), tt.spoofedUser)
				req.Header.Set(string(auth.ScopeHeader), string(auth.Publisher))
			}

			e.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
