package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/course_go_server/internal/model"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

func (r *VideoRepository) GetByID(id string) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListAll 按创建时间升序返回全部视频（课程目录顺序，最早的在前）
func (r *VideoRepository) ListAll() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Order("created_at ASC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
