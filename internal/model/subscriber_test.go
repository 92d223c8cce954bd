package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriptionType(t *testing.T) {
	tests := []struct {
		input string
		want  SubscriptionType
		ok    bool
	}{
		{"trial", TypeTrial, true},
		{"monthly", TypeMonthly, true},
		{"half-yearly", TypeHalfYearly, true},
		{"lifetime", TypeLifetime, true},
		{"TRIAL", TypeTrial, true},
		{"Monthly", TypeMonthly, true},
		{"yearly", "", false},
		{"", "", false},
		{"half yearly", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSubscriptionType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestExpiryFrom_Trial(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := TypeTrial.ExpiryFrom(issued)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), expiry)
}

func TestExpiryFrom_Monthly(t *testing.T) {
	t.Run("normal day", func(t *testing.T) {
		issued := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		expiry := TypeMonthly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC), expiry)
	})

	t.Run("month-end clamped to leap February", func(t *testing.T) {
		// 1月31日 + 1个月 = 2月29日（闰年），不能溢出到3月
		issued := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		expiry := TypeMonthly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), expiry)
	})

	t.Run("month-end clamped to non-leap February", func(t *testing.T) {
		issued := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
		expiry := TypeMonthly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), expiry)
	})

	t.Run("31st to 30-day month", func(t *testing.T) {
		issued := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		expiry := TypeMonthly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), expiry)
	})
}

func TestExpiryFrom_HalfYearly(t *testing.T) {
	t.Run("crosses year boundary", func(t *testing.T) {
		issued := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
		expiry := TypeHalfYearly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), expiry)
	})

	t.Run("month-end clamped", func(t *testing.T) {
		// 8月31日 + 6个月 = 次年2月28日
		issued := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
		expiry := TypeHalfYearly.ExpiryFrom(issued)
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), expiry)
	})
}

func TestExpiryFrom_Lifetime(t *testing.T) {
	issued := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expiry := TypeLifetime.ExpiryFrom(issued)
	assert.Equal(t, time.Date(2124, 6, 1, 0, 0, 0, 0, time.UTC), expiry)

	// 闰日签发，100年后收敛到2月28日
	leap := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2124, 2, 28, 0, 0, 0, 0, time.UTC), TypeLifetime.ExpiryFrom(leap))
}

func TestExpiryFrom_AlwaysAfterIssuance(t *testing.T) {
	issued := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	for _, typ := range []SubscriptionType{TypeTrial, TypeMonthly, TypeHalfYearly, TypeLifetime} {
		expiry := typ.ExpiryFrom(issued)
		require.True(t, expiry.After(issued), "type %s", typ)
	}
}
