package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionType 订阅类型（封闭枚举）
type SubscriptionType string

const (
	TypeTrial      SubscriptionType = "trial"
	TypeMonthly    SubscriptionType = "monthly"
	TypeHalfYearly SubscriptionType = "half-yearly"
	TypeLifetime   SubscriptionType = "lifetime"
)

// ParseSubscriptionType 解析订阅类型（不区分大小写）
func ParseSubscriptionType(s string) (SubscriptionType, bool) {
	switch SubscriptionType(strings.ToLower(s)) {
	case TypeTrial:
		return TypeTrial, true
	case TypeMonthly:
		return TypeMonthly, true
	case TypeHalfYearly:
		return TypeHalfYearly, true
	case TypeLifetime:
		return TypeLifetime, true
	default:
		return "", false
	}
}

// ExpiryFrom 根据订阅类型计算过期时间。
// 按日历加月份：目标月份天数不足时收敛到该月最后一天，
// 避免 1月31日 + 1个月 溢出到 3月。
func (t SubscriptionType) ExpiryFrom(now time.Time) time.Time {
	switch t {
	case TypeTrial:
		return now.AddDate(0, 0, 7)
	case TypeMonthly:
		return addMonths(now, 1)
	case TypeHalfYearly:
		return addMonths(now, 6)
	case TypeLifetime:
		// 100年，实际意义上的"永不过期"
		return addMonths(now, 100*12)
	default:
		// 调用方应先通过 ParseSubscriptionType 校验
		return now
	}
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// 下个月第0天即本月最后一天
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type Subscriber struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	LicenseKey string           `gorm:"size:19;uniqueIndex;not null" json:"licenseKey"`
	Username   string           `gorm:"size:50;not null;index" json:"username"`
	Type       SubscriptionType `gorm:"size:20;not null" json:"type"`
	TxHash     string           `gorm:"size:100;not null" json:"txHash"`
	ExpiryDate time.Time        `gorm:"not null" json:"expiryDate"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
