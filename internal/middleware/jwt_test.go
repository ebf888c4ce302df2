package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func newProtectedRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Get("/protected", func(w http.ResponseWriter, req *http.Request) {
			principal, _ := GetPrincipal(req.Context())
			w.Write([]byte(principal.UserID))
		})
		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func issueToken(t *testing.T, role string) (string, string) {
	t.Helper()
	user := &models.User{ID: bson.NewObjectID(), Email: "u@co.com", Role: role}
	token, err := auth.IssueToken(testSecret, user)
	require.NoError(t, err)
	return token, user.ID.Hex()
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	newProtectedRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization")
}

func TestJWTAuthMalformedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInjectsPrincipal(t *testing.T) {
	token, userID := issueToken(t, models.RoleEmployee)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, rec.Body.String())
}

func TestRequireAdminRejectsEmployee(t *testing.T) {
	token, _ := issueToken(t, models.RoleEmployee)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	token, _ := issueToken(t, models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserIDWithoutPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetUserID(req.Context()))
}
