package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"fixmyrp-backend/models"
	"fixmyrp-backend/services"
	"fixmyrp-backend/utils"
)

func TestSubmitReportCreatesReportAndTwoNotifications(t *testing.T) {
	env := newTestEnv()

	env.submitReport(t, "a@x.com")

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "Pothole", report.Category)
	assert.Len(t, report.StatusHistory, 1)
	assert.Equal(t, models.StatusPending, report.CurrentStatus())

	notifications, err := env.notifications.Find(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)

	userCopies, err := env.notifications.Find(context.Background(), "a@x.com", models.RecipientUser)
	assert.NoError(t, err)
	assert.Len(t, userCopies, 1)
	assert.Equal(t, models.NotifSuccess, userCopies[0].Status)
	assert.Equal(t, report.ID, userCopies[0].ReportID)

	adminCopies, err := env.notifications.Find(context.Background(), services.AdminMailbox, models.RecipientAdmin)
	assert.NoError(t, err)
	assert.Len(t, adminCopies, 1)
	assert.Equal(t, models.NotifInfo, adminCopies[0].Status)
}

func TestSubmitReportRejectsMissingOrOversizedPhoto(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/report", map[string]interface{}{
		"category":  "Pothole",
		"userEmail": "a@x.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/api/report", map[string]interface{}{
		"category":  "Pothole",
		"userEmail": "a@x.com",
		"photoUrl":  "data:" + strings.Repeat("x", 1000001),
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing persisted on either rejection
	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, reports)
	notifications, err := env.notifications.Find(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestUpdateStatusAppendsAndNotifiesAdminOnly(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")
	token := adminToken(t)

	w := env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": "In Progress",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports[0].StatusHistory, 2)
	assert.Equal(t, "In Progress", reports[0].CurrentStatus())

	// status changes raise exactly one admin-facing record, no user copy
	all, err := env.notifications.Find(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	statusNotifs := 0
	for _, n := range all {
		if n.Title == "Report status updated" {
			statusNotifs++
			assert.Equal(t, models.RecipientAdmin, n.Recipient)
		}
	}
	assert.Equal(t, 1, statusNotifs)
}

func TestUpdateStatusRejectsDuplicate(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")
	token := adminToken(t)

	w := env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": models.StatusPending,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports[0].StatusHistory, 1)
}

func TestResolvedIsTerminal(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")
	token := adminToken(t)

	w := env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": models.StatusResolved,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": "In Progress",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// reopening is also rejected, history stays put
	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports[0].StatusHistory, 2)
	assert.Equal(t, models.StatusResolved, reports[0].CurrentStatus())
}

func TestUpdateStatusUnknownReport(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPut, "/api/reports/64b5fc2ea1b2c3d4e5f60718", map[string]string{
		"status": "In Progress",
	}, adminToken(t))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusRequiresAdminRole(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")

	w := env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": "In Progress",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": "In Progress",
	}, userToken(t))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// An admin token signed with a secret other than JWT_SECRET must not open
// the admin gate, regardless of its claims.
func TestAdminGateRejectsForgedToken(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.Claims{
		Email: services.AdminMailbox,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("fixmyrp-dev-secret"))
	assert.NoError(t, err)

	w := env.request(t, http.MethodPut, "/api/reports/"+id, map[string]string{
		"status": "In Progress",
	}, signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports[0].StatusHistory, 1)
}

func TestMessageAppendsAndNotifiesBothSides(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")

	w := env.request(t, http.MethodPatch, "/api/reports/"+id+"/message", map[string]string{
		"message": "We are on it",
	}, adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports[0].Messages, 1)
	assert.Equal(t, "We are on it", reports[0].Messages[0].Text)
	assert.Equal(t, "admin", reports[0].Messages[0].Sender)

	all, err := env.notifications.Find(context.Background(), "", "")
	assert.NoError(t, err)
	// two from submission, two from the message
	assert.Len(t, all, 4)

	userCopies, err := env.notifications.Find(context.Background(), "a@x.com", models.RecipientUser)
	assert.NoError(t, err)
	assert.Len(t, userCopies, 2)
	assert.Equal(t, "Message from Admin", userCopies[0].Title)
	assert.Equal(t, "We are on it", userCopies[0].Details)
}

func TestMessageUnknownReport(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPatch, "/api/reports/64b5fc2ea1b2c3d4e5f60718/message", map[string]string{
		"message": "hello",
	}, adminToken(t))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReportRemovesAllItsNotifications(t *testing.T) {
	env := newTestEnv()
	keepID := env.submitReport(t, "keep@x.com")
	dropID := env.submitReport(t, "drop@x.com")

	w := env.request(t, http.MethodDelete, "/api/report/"+dropID, nil, adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)

	reports, err := env.reports.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, keepID, reports[0].ID.Hex())

	// delete-all chosen over the source's delete-one
	all, err := env.notifications.Find(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	for _, n := range all {
		assert.Equal(t, keepID, n.ReportID.Hex())
	}
}

func TestEditReportUpdatesFields(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")

	w := env.request(t, http.MethodPut, "/api/report/"+id+"/edit", map[string]interface{}{
		"location":    "Block 7",
		"description": "Moved marker",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	updated := resp["updatedReport"].(map[string]interface{})
	assert.Equal(t, "Block 7", updated["location"])
	assert.Equal(t, "Moved marker", updated["description"])
}

func TestEditReportUnknownID(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPut, "/api/report/64b5fc2ea1b2c3d4e5f60718/edit", map[string]interface{}{
		"location": "Block 7",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReportsNewestFirst(t *testing.T) {
	env := newTestEnv()
	first := env.submitReport(t, "first@x.com")
	second := env.submitReport(t, "second@x.com")
	_ = first

	for _, path := range []string{"/api/reports", "/api/reports/all"} {
		w := env.request(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var listed []models.Report
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Len(t, listed, 2)
		assert.Equal(t, second, listed[0].ID.Hex())
	}
}

func TestGetReport(t *testing.T) {
	env := newTestEnv()
	id := env.submitReport(t, "a@x.com")

	w := env.request(t, http.MethodGet, "/api/reports/"+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var report models.Report
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, id, report.ID.Hex())

	w = env.request(t, http.MethodGet, "/api/reports/64b5fc2ea1b2c3d4e5f60718", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
