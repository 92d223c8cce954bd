package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Src         string    `gorm:"size:500;not null" json:"src"`
	Thumbnail   string    `gorm:"size:500" json:"thumbnail"`
	Duration    string    `gorm:"size:10" json:"duration"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
