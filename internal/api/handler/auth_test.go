package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/course_go_server/config"
	"github.com/qs3c/course_go_server/internal/api/middleware"
	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/repository"
	"github.com/qs3c/course_go_server/internal/service"
	"github.com/qs3c/course_go_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthHandler(t *testing.T) (*AuthHandler, *repository.SubscriberRepository, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	subscriberRepo := repository.NewSubscriberRepository(db)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
	}

	authService := service.NewAuthService(subscriberRepo)
	handler := NewAuthHandler(authService, cfg)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, subscriberRepo, cleanup
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler, repo, cleanup := setupAuthHandler(t)
	defer cleanup()

	sub := &model.Subscriber{
		LicenseKey: "AAAA-BBBB-CCCC-DDDD",
		Username:   "alice",
		Type:       model.TypeMonthly,
		TxHash:     "0xabc",
		ExpiryDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, repo.Create(sub))

	router := gin.New()
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/login", gin.H{
		"username":   "alice",
		"licenseKey": "AAAA-BBBB-CCCC-DDDD",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		User    struct {
			ID         string `json:"id"`
			Username   string `json:"username"`
			Type       string `json:"type"`
			ExpiryDate string `json:"expiryDate"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, sub.ID, body.User.ID)
	assert.Equal(t, "monthly", body.User.Type)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, sub.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	// debug 模式下不强制 Secure
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/login", handler.Login)

	tests := []gin.H{
		{"username": "alice"},
		{"licenseKey": "AAAA-BBBB-CCCC-DDDD"},
		{},
	}

	for _, body := range tests {
		w := performRequest(router, "POST", "/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, repo, cleanup := setupAuthHandler(t)
	defer cleanup()

	require.NoError(t, repo.Create(&model.Subscriber{
		LicenseKey: "AAAA-BBBB-CCCC-DDDD",
		Username:   "alice",
		Type:       model.TypeMonthly,
		TxHash:     "0xabc",
		ExpiryDate: time.Now().AddDate(0, 1, 0),
	}))

	router := gin.New()
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/login", gin.H{
		"username":   "alice",
		"licenseKey": "WRON-GKEY-WRON-GKEY",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestAuthHandler_Login_ExpiredLicense(t *testing.T) {
	handler, repo, cleanup := setupAuthHandler(t)
	defer cleanup()

	// 凭证正确但已过期
	require.NoError(t, repo.Create(&model.Subscriber{
		LicenseKey: "AAAA-BBBB-CCCC-DDDD",
		Username:   "alice",
		Type:       model.TypeTrial,
		TxHash:     "0xabc",
		ExpiryDate: time.Now().Add(-time.Minute),
	}))

	router := gin.New()
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/login", gin.H{
		"username":   "alice",
		"licenseKey": "AAAA-BBBB-CCCC-DDDD",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/logout", handler.Logout)

	w := performRequest(router, "POST", "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}
