package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	apphttp "github.com/jhoicas/pg-hostel-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/pg-hostel-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "smart-pg-test"
	testExpMin    = 60
)

// buildGateApp app mínima: AuthMiddleware + RequireCapability + handler dummy.
func buildGateApp(capability access.Capability) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireCapability(capability),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c), "user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func get(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireCapability_AdminAccedeRutaAdmin(t *testing.T) {
	resp := get(t, buildGateApp(access.CapAddResident), bearer(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, testUserID, body["user_id"])
}

func TestRequireCapability_ResidenteBloqueadoEnRutaAdmin(t *testing.T) {
	for _, capability := range []access.Capability{
		access.CapAddResident, access.CapAllocateRoom, access.CapSetRentPaid,
		access.CapPostNotice, access.CapUpdateComplaintStatus, access.CapExportReport,
	} {
		resp := get(t, buildGateApp(capability), bearer(t, entity.RoleResident))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, capability)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "FORBIDDEN")
	}
}

func TestRequireCapability_AdminNoPresentaQuejas(t *testing.T) {
	resp := get(t, buildGateApp(access.CapFileComplaint), bearer(t, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireCapability_RolDesconocido(t *testing.T) {
	resp := get(t, buildGateApp(access.CapViewNotices), bearer(t, "Superuser"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_TokenSinRol(t *testing.T) {
	resp := get(t, buildGateApp(access.CapViewNotices), bearer(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := get(t, buildGateApp(access.CapViewNotices), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	for _, header := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer"} {
		resp := get(t, buildGateApp(access.CapViewNotices), header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_SecretDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := get(t, buildGateApp(access.CapViewNotices), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
