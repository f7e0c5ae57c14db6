package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixmyrp-backend/models"
	"fixmyrp-backend/utils"
)

func TestUpdateUserNamePropagatesToOwnReportsOnly(t *testing.T) {
	env := newTestEnv()

	err := env.users.Insert(context.Background(), &models.User{
		Name:  "Alex",
		Email: "a@x.com",
	})
	assert.NoError(t, err)

	env.seedReport(t, "a@x.com", "Alex")
	env.seedReport(t, "a@x.com", "Alex")
	other := env.seedReport(t, "b@x.com", "Bella")

	w := env.request(t, http.MethodPut, "/api/user/a@x.com/name", map[string]string{
		"name": "Alexandra",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	user, err := env.users.FindByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alexandra", user.Name)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	for _, r := range reports {
		if r.UserEmail == "a@x.com" {
			assert.Equal(t, "Alexandra", r.Name)
		} else {
			assert.Equal(t, other.ID, r.ID)
			assert.Equal(t, "Bella", r.Name)
		}
	}
}

func TestUpdateUserContactAndEmail(t *testing.T) {
	env := newTestEnv()

	err := env.users.Insert(context.Background(), &models.User{
		Name:  "Alex",
		Email: "a@x.com",
	})
	assert.NoError(t, err)

	w := env.request(t, http.MethodPut, "/api/user/a@x.com/contact", map[string]string{
		"contactNumber": "+65 8000 0000",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPut, "/api/user/a@x.com/email", map[string]string{
		"newEmail": "alex@x.com",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	user, err := env.users.FindByEmail(context.Background(), "alex@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "+65 8000 0000", user.ContactNumber)

	// unconditional set: unknown email still answers 200
	w = env.request(t, http.MethodPut, "/api/user/nobody@x.com/contact", map[string]string{
		"contactNumber": "+65 7000 0000",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUserPasswordRehashes(t *testing.T) {
	env := newTestEnv()

	hashed, err := utils.HashPassword("old-password")
	assert.NoError(t, err)
	err = env.users.Insert(context.Background(), &models.User{
		Email:    "a@x.com",
		Password: hashed,
	})
	assert.NoError(t, err)

	w := env.request(t, http.MethodPut, "/api/user/a@x.com/password", map[string]string{
		"newPassword": "new-password",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	user, err := env.users.FindByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("new-password", user.Password))
	assert.False(t, utils.CheckPasswordHash("old-password", user.Password))
}

func TestUpdateAdminFields(t *testing.T) {
	env := newTestEnv()
	token := adminToken(t)

	err := env.admins.Insert(context.Background(), &models.Admin{
		Name:  "Shi Qi",
		Email: "admin2@example.com",
	})
	assert.NoError(t, err)

	// admin routes reject anonymous callers
	w := env.request(t, http.MethodPut, "/api/admin/admin2@example.com/name", map[string]string{
		"name": "New Name",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPut, "/api/admin/admin2@example.com/name", map[string]string{
		"name": "New Name",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// only the name route reports a missing admin
	w = env.request(t, http.MethodPut, "/api/admin/nobody@example.com/name", map[string]string{
		"name": "Ghost",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodPut, "/api/admin/nobody@example.com/contact", map[string]string{
		"contactNumber": "+65 6000 0000",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// admin name changes never touch reports
	env.seedReport(t, "a@x.com", "Alex")
	w = env.request(t, http.MethodPut, "/api/admin/admin2@example.com/name", map[string]string{
		"name": "Another Name",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Alex", reports[0].Name)

	w = env.request(t, http.MethodPut, "/api/admin/admin2@example.com/password", map[string]string{
		"newPassword": "NewAdmin456!",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	admin, err := env.admins.FindByEmail(context.Background(), "admin2@example.com")
	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("NewAdmin456!", admin.Password))
}
