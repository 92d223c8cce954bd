package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
)

// TestSubscriber 创建测试订阅者
func TestSubscriber(t *testing.T, db *gorm.DB, opts ...func(*model.Subscriber)) *model.Subscriber {
	t.Helper()

	now := time.Now()
	subscriber := &model.Subscriber{
		LicenseKey: fmt.Sprintf("TEST-%04d-AAAA-BBBB", time.Now().UnixNano()%10000),
		Username:   fmt.Sprintf("testuser_%d", time.Now().UnixNano()%100000),
		Type:       model.TypeMonthly,
		TxHash:     "0xdeadbeef",
		ExpiryDate: now.AddDate(0, 1, 0),
	}

	for _, opt := range opts {
		opt(subscriber)
	}

	if err := db.Create(subscriber).Error; err != nil {
		t.Fatalf("Failed to create test subscriber: %v", err)
	}

	return subscriber
}

// WithLicenseKey 设置License Key
func WithLicenseKey(key string) func(*model.Subscriber) {
	return func(s *model.Subscriber) {
		s.LicenseKey = key
	}
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.Subscriber) {
	return func(s *model.Subscriber) {
		s.Username = username
	}
}

// WithType 设置订阅类型
func WithType(typ model.SubscriptionType) func(*model.Subscriber) {
	return func(s *model.Subscriber) {
		s.Type = typ
	}
}

// WithExpiryDate 设置过期时间
func WithExpiryDate(expiry time.Time) func(*model.Subscriber) {
	return func(s *model.Subscriber) {
		s.ExpiryDate = expiry
	}
}

// TestVideo 创建测试视频
func TestVideo(t *testing.T, db *gorm.DB, opts ...func(*model.Video)) *model.Video {
	t.Helper()

	video := &model.Video{
		Title:       fmt.Sprintf("Test Video %d", time.Now().UnixNano()%10000),
		Description: "A test video",
		Src:         "https://player.mux.com/abc123",
		Duration:    "10:00",
	}

	for _, opt := range opts {
		opt(video)
	}

	if err := db.Create(video).Error; err != nil {
		t.Fatalf("Failed to create test video: %v", err)
	}

	return video
}

// WithTitle 设置视频标题
func WithTitle(title string) func(*model.Video) {
	return func(v *model.Video) {
		v.Title = title
	}
}

// WithCreatedAt 设置创建时间（控制目录顺序）
func WithCreatedAt(createdAt time.Time) func(*model.Video) {
	return func(v *model.Video) {
		v.CreatedAt = createdAt
	}
}

// WithThumbnail 设置缩略图
func WithThumbnail(thumbnail string) func(*model.Video) {
	return func(v *model.Video) {
		v.Thumbnail = thumbnail
	}
}
