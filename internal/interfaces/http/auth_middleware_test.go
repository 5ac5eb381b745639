package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/pos-api/internal/domain/entity"
	apphttp "github.com/clinivet/pos-api/internal/interfaces/http"
	pkgjwt "github.com/clinivet/pos-api/pkg/jwt"
)

// buildProtectedApp arma una aplicación mínima con AuthMiddleware +
// RequirePOSRole y un handler dummy que devuelve 200 si pasa ambos.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePOSRole(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":   true,
				"user": apphttp.GetUserID(c),
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_HeaderMalformado(t *testing.T) {
	for _, header := range []string{"token-sin-esquema", "Basic abc123", "Bearer"} {
		resp := doProtected(t, buildProtectedApp(), header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"header %q debe rechazarse", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, entity.RoleVendedor, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, buildProtectedApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleVendedor, testIssuer, -5)
	require.NoError(t, err)

	resp := doProtected(t, buildProtectedApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePOSRole_VendedorYAdminPasan(t *testing.T) {
	for _, role := range []string{entity.RoleVendedor, entity.RoleAdmin} {
		resp := doProtected(t, buildProtectedApp(), bearerFor(t, role))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "rol %s debe tener permiso de caja", role)
		resp.Body.Close()
	}
}

func TestRequirePOSRole_VeterinarioBloqueado(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(), bearerFor(t, entity.RoleVeterinario))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
