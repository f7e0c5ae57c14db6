package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixmyrp-backend/models"
	"fixmyrp-backend/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":          "Alex",
		"contactNumber": "+65 9123 4567",
		"email":         "alex@example.com",
		"password":      "hunter22",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// stored password must be a digest, not the plaintext
	user, err := env.users.FindByEmail(context.Background(), "alex@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, utils.CheckPasswordHash("hunter22", user.Password))

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alex@example.com",
		"password": "hunter22",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp["message"])
	assert.NotEmpty(t, resp["token"])
	userSummary := resp["user"].(map[string]interface{})
	assert.Equal(t, "Alex", userSummary["name"])
	assert.Equal(t, "alex@example.com", userSummary["email"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	payload := map[string]string{
		"name":     "Alex",
		"email":    "alex@example.com",
		"password": "hunter22",
	}
	w := env.request(t, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv()

	hashed, err := utils.HashPassword("right-password")
	assert.NoError(t, err)
	err = env.users.Insert(context.Background(), &models.User{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: hashed,
	})
	assert.NoError(t, err)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "right-password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alex@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv()

	hashed, err := utils.HashPassword("Admin456!")
	assert.NoError(t, err)
	err = env.admins.Insert(context.Background(), &models.Admin{
		Name:          "Shi Qi",
		Email:         "admin2@example.com",
		Password:      hashed,
		ContactNumber: "+65 9000 1234",
	})
	assert.NoError(t, err)

	w := env.request(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Admin456!",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "admin2@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "admin2@example.com",
		"password": "Admin456!",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Shi Qi", resp["name"])
	assert.Equal(t, "admin", resp["role"])
	assert.NotEmpty(t, resp["token"])
}
