package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubRoleLookup returns a fixed role per email, mutable between calls.
type stubRoleLookup struct {
	roles map[string]string
}

func (s *stubRoleLookup) RoleByEmail(ctx context.Context, email string) (string, error) {
	return s.roles[email], nil
}

func newGuardContext(t *testing.T, target string, claimEmail string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claimEmail != "" {
		c.Set("user", &jwt.Token{Claims: &Claims{Email: claimEmail}, Valid: true})
	}
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireSelf(t *testing.T) {
	tests := []struct {
		name       string
		claimEmail string
		query      string
		wantStatus int // 0 means handler ran
	}{
		{name: "matching identity allowed", claimEmail: "a@x.com", query: "?email=a@x.com"},
		{name: "mismatched identity forbidden", claimEmail: "a@x.com", query: "?email=b@y.org", wantStatus: http.StatusForbidden},
		{name: "case sensitive comparison", claimEmail: "a@x.com", query: "?email=A@X.COM", wantStatus: http.StatusForbidden},
		{name: "missing parameter passes through", claimEmail: "a@x.com", query: ""},
		{name: "missing claims unauthorized", claimEmail: "", query: "?email=a@x.com", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newGuardContext(t, "/classCart"+tt.query, tt.claimEmail)
			err := RequireSelf("email")(okHandler)(c)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestRequireSelf_PathParam(t *testing.T) {
	c, rec := newGuardContext(t, "/users/admin/a@x.com", "a@x.com")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	err := RequireSelf("email")(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{
		"admin@x.com":      "admin",
		"instructor@x.com": "instructor",
	}}

	tests := []struct {
		name       string
		claimEmail string
		role       string
		wantStatus int
	}{
		{name: "admin allowed", claimEmail: "admin@x.com", role: "admin"},
		{name: "wrong role forbidden", claimEmail: "instructor@x.com", role: "admin", wantStatus: http.StatusForbidden},
		{name: "unknown identity forbidden", claimEmail: "nobody@x.com", role: "admin", wantStatus: http.StatusForbidden},
		{name: "missing claims unauthorized", claimEmail: "", role: "admin", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newGuardContext(t, "/users", tt.claimEmail)
			err := RequireRole(lookup, tt.role)(okHandler)(c)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

// A revoked role must take effect on the next call; the guard may not cache.
func TestRequireRole_FreshRead(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{"admin@x.com": "admin"}}
	guard := RequireRole(lookup, "admin")(okHandler)

	c, rec := newGuardContext(t, "/users", "admin@x.com")
	assert.NoError(t, guard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	delete(lookup.roles, "admin@x.com")

	c, _ = newGuardContext(t, "/users", "admin@x.com")
	err := guard(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
