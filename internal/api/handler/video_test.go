package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/repository"
	"github.com/qs3c/course_go_server/internal/service"
	"github.com/qs3c/course_go_server/internal/testutil"
)

func setupVideoHandler(t *testing.T) (*VideoHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	videoService := service.NewVideoService(repository.NewVideoRepository(db))
	handler := NewVideoHandler(videoService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, db, cleanup
}

func TestVideoHandler_Create_Success(t *testing.T) {
	handler, _, cleanup := setupVideoHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/videos", handler.Create)

	w := performRequest(router, "POST", "/videos", gin.H{
		"title":       "Lesson 1",
		"description": "Intro",
		"src":         "https://player.mux.com/abc123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool        `json:"success"`
		Video   model.Video `json:"video"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Video.ID)
	assert.Equal(t, "0:00", body.Video.Duration)
	assert.Empty(t, body.Video.Thumbnail)
}

func TestVideoHandler_Create_MissingRequiredFields(t *testing.T) {
	handler, _, cleanup := setupVideoHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/videos", handler.Create)

	tests := []gin.H{
		{"description": "no title", "src": "https://player.mux.com/a"},
		{"title": "no description", "src": "https://player.mux.com/a"},
		{"title": "no src", "description": "d"},
	}

	for _, body := range tests {
		w := performRequest(router, "POST", "/videos", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestVideoHandler_List_OldestFirst(t *testing.T) {
	handler, db, cleanup := setupVideoHandler(t)
	defer cleanup()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.TestVideo(t, db, testutil.WithTitle("second"), testutil.WithCreatedAt(base.AddDate(0, 0, 1)))
	testutil.TestVideo(t, db, testutil.WithTitle("first"), testutil.WithCreatedAt(base))

	router := gin.New()
	router.GET("/videos", handler.List)

	w := performRequest(router, "GET", "/videos", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool          `json:"success"`
		Videos  []model.Video `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Videos, 2)
	assert.Equal(t, "first", body.Videos[0].Title)
	assert.Equal(t, "second", body.Videos[1].Title)
}
