package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/domain/entity"
	pkgjwt "github.com/clinivet/pos-api/pkg/jwt"
)

func seedUser(t *testing.T, store interface{ SeedUser(entity.User) }, status string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.SeedUser(entity.User{
		ID:           testUserID,
		Email:        "caja@clinivet.test",
		PasswordHash: string(hash),
		Name:         "Cajero Uno",
		Role:         entity.RoleVendedor,
		Status:       status,
		CreatedAt:    time.Now(),
	})
}

func TestLogin_Exitoso(t *testing.T) {
	app, store := buildApp(t)
	seedUser(t, store, "active")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email": "caja@clinivet.test", "password": "secreto123"}`, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "caja@clinivet.test", body.User.Email)

	userID, role, err := pkgjwt.Parse(testJWTSecret, body.Token)
	require.NoError(t, err, "el token emitido debe validar con el mismo secret")
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleVendedor, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	app, store := buildApp(t)
	seedUser(t, store, "active")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email": "caja@clinivet.test", "password": "otra"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	app, _ := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email": "nadie@clinivet.test", "password": "secreto123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	app, store := buildApp(t)
	seedUser(t, store, "inactive")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email": "caja@clinivet.test", "password": "secreto123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_CuerpoMalformado(t *testing.T) {
	app, _ := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"email": `, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
