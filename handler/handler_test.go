package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lms-chat-server/config"
	"lms-chat-server/dto/res"
	"lms-chat-server/handler"
	"lms-chat-server/repository"
	"lms-chat-server/routes"
	"lms-chat-server/usecase"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	_, err = config.Migrate(db)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := validator.New()

	userRepo := repository.NewUserRepository()
	chatRepo := repository.NewChatRepository()
	messageRepo := repository.NewMessageRepository()
	fileRepo := repository.NewFileRepository()

	userUsecase := usecase.NewUserUsecase(userRepo, validate, db, log)
	chatUsecase := usecase.NewChatUsecase(chatRepo, userRepo, validate, db, log)
	fileUsecase := usecase.NewFileUsecase(fileRepo, db, log)
	messageUsecase := usecase.NewMessageUsecase(db, log, userRepo, messageRepo, fileRepo, "http://localhost:3001")

	app := fiber.New()
	route := routes.ConfigRoute{
		App:            app,
		UserHandler:    handler.NewUserHandler(userUsecase, log),
		ChatHandler:    handler.NewChatHandler(chatUsecase, log),
		MessageHandler: handler.NewMessageHandler(messageUsecase, log),
		FileHandler:    handler.NewFileHandler(fileUsecase, log),
	}
	route.GetRoute()
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func syncTestUser(t *testing.T, app *fiber.App, uid, name, role string) {
	t.Helper()
	resp := postJSON(t, app, fiber.MethodPost, "/api/sync-user", fiber.Map{
		"firebase_uid": uid,
		"email":        uid + "@example.com",
		"full_name":    name,
		"role":         role,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestSyncUserEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, fiber.MethodPost, "/api/sync-user", fiber.Map{
		"firebase_uid": "u1",
		"email":        "alice@example.com",
		"full_name":    "Alice",
		"role":         "student",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body res.SyncUserResponse
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.UserID)
	assert.Equal(t, "student", body.Role)
}

func TestSaveFcmTokenUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, fiber.MethodPost, "/api/save-fcm-token", fiber.Map{
		"firebase_uid": "ghost",
		"fcm_token":    "tok-1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUploadWithoutFile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/upload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	app := newTestApp(t)
	content := []byte("hello attachment")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var uploaded res.UploadResponse
	decodeBody(t, resp, &uploaded)
	require.NotZero(t, uploaded.FileID)

	dlReq := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/files/%d", uploaded.FileID), nil)
	dlResp, err := app.Test(dlReq)
	require.NoError(t, err)
	defer dlResp.Body.Close()
	require.Equal(t, fiber.StatusOK, dlResp.StatusCode)

	downloaded, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)
	assert.Contains(t, dlResp.Header.Get(fiber.HeaderContentDisposition), "notes.txt")
}

func TestDownloadUnknownFile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/files/424242", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestChatEndpoints(t *testing.T) {
	app := newTestApp(t)

	syncTestUser(t, app, "u1", "Alice", "student")
	syncTestUser(t, app, "u2", "Bob", "instructor")

	resp := postJSON(t, app, fiber.MethodPost, "/api/chats", fiber.Map{
		"student_firebase_uid":    "u1",
		"instructor_firebase_uid": "u2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var created res.CreateChatResponse
	decodeBody(t, resp, &created)
	assert.True(t, created.IsNew)

	resp = postJSON(t, app, fiber.MethodPost, "/api/chats", fiber.Map{
		"student_firebase_uid":    "u1",
		"instructor_firebase_uid": "u2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var again res.CreateChatResponse
	decodeBody(t, resp, &again)
	assert.False(t, again.IsNew)
	assert.Equal(t, created.ChatID, again.ChatID)

	listReq := httptest.NewRequest(fiber.MethodGet, "/api/chats?firebase_uid=u1", nil)
	listResp, err := app.Test(listReq)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)
	var summaries []res.ChatSummary
	decodeBody(t, listResp, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Bob", summaries[0].RecipientName)

	unknownReq := httptest.NewRequest(fiber.MethodGet, "/api/chats?firebase_uid=ghost", nil)
	unknownResp, err := app.Test(unknownReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, unknownResp.StatusCode)
	unknownResp.Body.Close()
}

func TestMarkReadEndpoint(t *testing.T) {
	app := newTestApp(t)

	syncTestUser(t, app, "u1", "Alice", "student")
	syncTestUser(t, app, "u2", "Bob", "instructor")

	resp := postJSON(t, app, fiber.MethodPost, "/api/chats", fiber.Map{
		"student_firebase_uid":    "u1",
		"instructor_firebase_uid": "u2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var chat res.CreateChatResponse
	decodeBody(t, resp, &chat)

	resp = postJSON(t, app, fiber.MethodPut, "/api/messages/mark-read", fiber.Map{
		"chat_id":           chat.ChatID,
		"user_firebase_uid": "u2",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, fiber.MethodPut, "/api/messages/mark-read", fiber.Map{
		"chat_id":           chat.ChatID,
		"user_firebase_uid": "ghost",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetMessagesEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/messages/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []res.MessageRecord
	decodeBody(t, resp, &records)
	assert.Empty(t, records)
}
