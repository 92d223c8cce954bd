package service

import (
	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/model/dto"
	"github.com/qs3c/course_go_server/internal/repository"
)

type VideoService struct {
	videoRepo *repository.VideoRepository
}

func NewVideoService(videoRepo *repository.VideoRepository) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
	}
}

// Create 登记视频，缩略图默认为空，时长默认 "0:00"
func (s *VideoService) Create(req *dto.CreateVideoRequest) (*model.Video, error) {
	duration := req.Duration
	if duration == "" {
		duration = "0:00"
	}

	video := &model.Video{
		Title:       req.Title,
		Description: req.Description,
		Src:         req.Src,
		Thumbnail:   req.Thumbnail,
		Duration:    duration,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

// List 按创建时间升序返回课程目录
func (s *VideoService) List() ([]model.Video, error) {
	return s.videoRepo.ListAll()
}

// Get 按ID查找视频
func (s *VideoService) Get(id string) (*model.Video, error) {
	return s.videoRepo.GetByID(id)
}

// Neighbors 返回目录顺序中当前视频的前一个和后一个。
// 第一个视频没有"上一个"，最后一个没有"下一个"，不回绕。
func (s *VideoService) Neighbors(id string) (prev, next *model.Video, err error) {
	videos, err := s.videoRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}

	for i := range videos {
		if videos[i].ID != id {
			continue
		}
		if i > 0 {
			prev = &videos[i-1]
		}
		if i < len(videos)-1 {
			next = &videos[i+1]
		}
		return prev, next, nil
	}

	return nil, nil, nil
}
