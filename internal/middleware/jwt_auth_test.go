package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims domain.Claims, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(roles ...string) domain.Claims {
	return domain.Claims{
		UserID: "m1",
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", VerifyToken(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	app.Get("/admin", VerifyToken(testSecret), AuthorizeRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestVerifyToken(t *testing.T) {
	app := newAuthApp()

	expired := validClaims(domain.RoleMember)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", validClaims(domain.RoleMember), jwt.SigningMethodHS256), fiber.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + signToken(t, testSecret, validClaims(domain.RoleMember), jwt.SigningMethodHS512), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, expired, jwt.SigningMethodHS256), fiber.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, testSecret, validClaims(domain.RoleMember), jwt.SigningMethodHS256), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuthorizeRole(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(domain.RoleMember), jwt.SigningMethodHS256))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(domain.RoleMember, domain.RoleAdmin), jwt.SigningMethodHS256))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
