package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/model/dto"
	"github.com/qs3c/course_go_server/internal/repository"
)

var (
	ErrInvalidSubscriptionType = errors.New("无效的订阅类型")
	ErrLicenseKeyExists        = errors.New("License Key已存在")
)

type SubscriberService struct {
	subscriberRepo *repository.SubscriberRepository
}

func NewSubscriberService(subscriberRepo *repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{
		subscriberRepo: subscriberRepo,
	}
}

// Create 签发订阅者。
// 类型解析失败直接返回错误，不写入任何记录；
// License Key重复由唯一约束拒绝（单次原子插入，并发时后写者收到冲突）。
func (s *SubscriberService) Create(req *dto.CreateSubscriberRequest) (*model.Subscriber, error) {
	typ, ok := model.ParseSubscriptionType(req.Type)
	if !ok {
		return nil, ErrInvalidSubscriptionType
	}

	now := time.Now()
	subscriber := &model.Subscriber{
		LicenseKey: req.LicenseKey,
		Username:   req.Username,
		Type:       typ,
		TxHash:     req.TxHash,
		ExpiryDate: typ.ExpiryFrom(now),
	}

	if err := s.subscriberRepo.Create(subscriber); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLicenseKeyExists
		}
		return nil, err
	}

	return subscriber, nil
}

// List 按创建时间倒序返回全部订阅者
func (s *SubscriberService) List() ([]model.Subscriber, error) {
	return s.subscriberRepo.ListAll()
}
