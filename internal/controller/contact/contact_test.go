package contact

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/auth"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/database"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/middleware"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/model"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardownFn func(context.Context, ...testcontainers.TerminateOption) error
	teardownFn, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil {
		_ = teardownFn(ctx)
	}
}

func contactEngine() *gin.Engine {
	cc := NewContactController(testDB)
	r := gin.New()
	r.POST("/contact", cc.SendMessageHandler)
	r.GET("/admin/messages", middleware.RequireAuth(testDB), cc.GetAllMessages)
	r.PATCH("/admin/messages/:id/read", middleware.RequireAuth(testDB), cc.MarkMessageAsRead)
	r.DELETE("/admin/messages/:id", middleware.RequireAuth(testDB), cc.DeleteMessage)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestAdminUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestSendMessage(t *testing.T) {
	r := contactEngine()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"name":    "Ravi Prospect",
		"email":   "ravi@example.com",
		"company": "Prospect Ltd",
		"subject": "Pricing",
		"message": "How much for ten arms?",
	}, "", r, "/contact", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Equal(t, "Message sent successfully", resp["message"])

	var stored model.ContactMessage
	assert.NoError(t, testDB.Where("email = ?", "ravi@example.com").First(&stored).Error)
	assert.False(t, stored.Read, "incoming message must start unread")
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSendMessageMissingFields(t *testing.T) {
	r := contactEngine()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"name":  "No Message",
		"email": "nomsg@example.com",
	}, "", r, "/contact", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllMessagesNewestFirst(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	older := model.ContactMessage{
		Name: "Older Sender", Email: "oldmsg@example.com", Message: "first",
		CreatedAt: time.Now().Add(-3 * time.Hour),
	}
	assert.NoError(t, testDB.Create(&older).Error)

	rec, list := testutil.MakeJSONListRequest(token, r, "/admin/messages", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(list), 2)

	var prev time.Time
	for i, item := range list {
		createdAt, err := time.Parse(time.RFC3339, item["createdAt"].(string))
		assert.NoError(t, err)
		if i > 0 {
			assert.False(t, createdAt.After(prev), "messages out of order at index %d", i)
		}
		prev = createdAt
	}
}

func TestGetAllMessagesRequireToken(t *testing.T) {
	r := contactEngine()

	rec, _ := testutil.MakeJSONListRequest("", r, "/admin/messages", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMarkMessageAsReadIdempotent(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	msg := model.ContactMessage{
		Name: "Unread Sender", Email: "unread@example.com", Message: "mark me",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, testDB.Create(&msg).Error)
	assert.False(t, msg.Read)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/admin/messages/%d/read", msg.ID), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Equal(t, true, resp["read"])

	// Second call succeeds and changes nothing.
	rec, resp = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/admin/messages/%d/read", msg.ID), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["read"])

	var stored model.ContactMessage
	assert.NoError(t, testDB.First(&stored, msg.ID).Error)
	assert.True(t, stored.Read)
}

func TestMarkMessageAsReadNotFound(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/admin/messages/999999/read", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Message not found", resp["error"])
}

func TestDeleteMessage(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	msg := model.ContactMessage{
		Name: "Doomed Sender", Email: "doomed@example.com", Message: "delete me",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, testDB.Create(&msg).Error)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/admin/messages/%d", msg.ID), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Message deleted successfully", resp["message"])

	var count int64
	assert.NoError(t, testDB.Model(&model.ContactMessage{}).Where("id = ?", msg.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteMessageNotFound(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/admin/messages/999999", http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMessageBadID(t *testing.T) {
	r := contactEngine()
	token := adminToken(t)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/admin/messages/not-a-number", http.MethodDelete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
