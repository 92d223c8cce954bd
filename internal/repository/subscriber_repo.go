package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(subscriber *model.Subscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *SubscriberRepository) GetByID(id string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	err := r.db.Where("id = ?", id).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetByCredentials 按用户名和License Key精确匹配（区分大小写）
func (r *SubscriberRepository) GetByCredentials(username, licenseKey string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	err := r.db.Where("username = ? AND license_key = ?", username, licenseKey).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// ListAll 按创建时间倒序返回全部订阅者（后台列表）
func (r *SubscriberRepository) ListAll() ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	err := r.db.Order("created_at DESC").Find(&subscribers).Error
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}
