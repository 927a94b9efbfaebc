package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/adapter/repository"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/external/calendar"
	httpmw "github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
	"github.com/johnquangdev/mom-ai/internal/usecase/auth"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
	"github.com/johnquangdev/mom-ai/internal/usecase/transcription"
	"github.com/johnquangdev/mom-ai/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/mom-ai/pkg/validator"
)

const testHookKey = "hook-secret"

func newTestServer(t *testing.T, authRequired bool) *echo.Echo {
	t.Helper()

	logger := zap.NewNop()
	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	meetingRepo := repository.NewMeetingRepository(store)
	userRepo := repository.NewUserRepository(store)
	jobRepo := repository.NewJobRepository(store)
	auditRepo := repository.NewAuditRepository(store)
	analyticsRepo := repository.NewAnalyticsRepository(store)

	jwtManager := jwt.NewManager("test-secret", time.Hour)
	authService := auth.NewService(userRepo, auditRepo, analyticsRepo, jwtManager, logger)
	require.NoError(t, authService.BootstrapAdmin(context.Background(), "", ""))

	meetingService := meeting.NewService(
		meetingRepo,
		jobRepo,
		auditRepo,
		analyticsRepo,
		calendar.NewMockProvider(),
		transcription.NewSimulator(),
		logger,
		meeting.Options{AutoNoteFromTranscript: true, EmailJobMaxRetries: 3},
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = EchoErrorHandler(logger)
	e.HideBanner = true

	router := NewRouter(
		httpmw.NewAuthMiddleware(authService, authRequired),
		NewAuth(authService, logger),
		NewMeeting(meetingService, logger),
		NewTranscription(meetingService, logger),
		NewIntegration(meetingService, calendar.NewMockProvider(), logger),
		NewHook(meetingService, testHookKey, logger),
		NewAdmin(authService, meetingRepo, jobRepo, auditRepo, analyticsRepo, logger),
		NewShare(meetingService, logger),
	)
	router.Setup(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestMeetingLifecycleOverHTTP(t *testing.T) {
	e := newTestServer(t, false)

	rec := doJSON(e, http.MethodPost, "/api/meetings/start",
		`{"title":"Weekly Sync","attendees":["pm@example.com"],"meetingLink":"https://meet.google.com/abc"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["message"])
	data := body["data"].(map[string]interface{})
	meetingID := data["id"].(string)
	assert.Equal(t, "google_meet", data["platform"])
	assert.Equal(t, true, data["isActive"])

	rec = doJSON(e, http.MethodPost, "/api/meetings/"+meetingID+"/notes",
		`{"text":"Action: Sam will draft the rollout plan by friday","speaker":"PM"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/meetings/"+meetingID+"/end", "{}", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	endData := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Contains(t, endData["mom"].(string), "Minutes of Meeting")

	rec = doJSON(e, http.MethodPost, "/api/meetings/"+meetingID+"/share-mom", "{}", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	shareData := decodeBody(t, rec)["data"].(map[string]interface{})
	shareID := shareData["id"].(string)
	require.NotEmpty(t, shareID)
	assert.Contains(t, shareData["url"].(string), "/share/mom/"+shareID)

	// The public share page needs no authentication.
	rec = doJSON(e, http.MethodGet, "/share/mom/"+shareID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weekly Sync")

	rec = doJSON(e, http.MethodGet, "/share/mom/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeetingValidationOverHTTP(t *testing.T) {
	e := newTestServer(t, false)

	rec := doJSON(e, http.MethodPost, "/api/meetings/start", `{"title":"No attendees"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.NotNil(t, body["code"])

	rec = doJSON(e, http.MethodGet, "/api/meetings/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHookKeyEnforcement(t *testing.T) {
	e := newTestServer(t, false)

	rec := doJSON(e, http.MethodPost, "/api/meetings/start",
		`{"title":"Weekly Sync","attendees":["pm@example.com"]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	meetingID := decodeBody(t, rec)["data"].(map[string]interface{})["id"].(string)

	payload := fmt.Sprintf(`{"meetingId":%q,"note":"pushed from the extension"}`, meetingID)

	rec = doJSON(e, http.MethodPost, "/api/hooks/meeting-context", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/hooks/meeting-context", payload,
		map[string]string{"X-Hook-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/hooks/meeting-context", payload,
		map[string]string{"X-Hook-Key": testHookKey})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["notesIngested"])
}

func TestAuthRequiredMode(t *testing.T) {
	e := newTestServer(t, true)

	rec := doJSON(e, http.MethodPost, "/api/meetings/start",
		`{"title":"Weekly Sync","attendees":["pm@example.com"]}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, auth.DefaultAdminEmail, auth.DefaultAdminPassword), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	loginData := decodeBody(t, rec)["data"].(map[string]interface{})
	token := loginData["token"].(string)
	require.NotEmpty(t, token)

	authHeader := map[string]string{echo.HeaderAuthorization: "Bearer " + token}

	rec = doJSON(e, http.MethodPost, "/api/meetings/start",
		`{"title":"Weekly Sync","attendees":["pm@example.com"]}`, authHeader)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", authHeader)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/admin/analytics", "", authHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesRejectMembers(t *testing.T) {
	e := newTestServer(t, true)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, auth.DefaultAdminEmail, auth.DefaultAdminPassword), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	adminToken := decodeBody(t, rec)["data"].(map[string]interface{})["token"].(string)
	adminHeader := map[string]string{echo.HeaderAuthorization: "Bearer " + adminToken}

	rec = doJSON(e, http.MethodPost, "/api/admin/users",
		`{"email":"member@mom.local","password":"password123","role":"member"}`, adminHeader)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"member@mom.local","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	memberToken := decodeBody(t, rec)["data"].(map[string]interface{})["token"].(string)
	memberHeader := map[string]string{echo.HeaderAuthorization: "Bearer " + memberToken}

	rec = doJSON(e, http.MethodGet, "/api/admin/analytics", "", memberHeader)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIntegrationRoutes(t *testing.T) {
	e := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/api/integrations/platforms", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/integrations/google_meet/events", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/integrations/webex/events", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/integrations/start-from-event",
		`{"platform":"zoom","eventId":"whatever"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["selectedByFallback"])
}
