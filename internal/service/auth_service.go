package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("用户名或License Key错误")
	ErrLicenseExpired     = errors.New("License已过期")
)

type AuthService struct {
	subscriberRepo *repository.SubscriberRepository
}

func NewAuthService(subscriberRepo *repository.SubscriberRepository) *AuthService {
	return &AuthService{
		subscriberRepo: subscriberRepo,
	}
}

// Login 校验凭证并返回订阅者。
// License已过期时仅拒绝登录，记录本身不做任何修改，
// 过期订阅者留在库中，续期只能由运营人工处理。
func (s *AuthService) Login(username, licenseKey string) (*model.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByCredentials(username, licenseKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// MySQL默认排序规则不区分大小写，这里再做一次字节级比对
	if subscriber.Username != username || subscriber.LicenseKey != licenseKey {
		return nil, ErrInvalidCredentials
	}

	if time.Now().After(subscriber.ExpiryDate) {
		return nil, ErrLicenseExpired
	}

	return subscriber, nil
}

// GetSubscriber 根据会话中的标识查找订阅者（渲染个性化页头时使用）
func (s *AuthService) GetSubscriber(id string) (*model.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return subscriber, nil
}
