package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponWindowIsInclusive(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	coupon := Coupon{Code: "SAVE10", Active: true, ValidFrom: from, ValidTo: to}

	assert.False(t, coupon.ValidAt(from.Add(-time.Second)))
	assert.True(t, coupon.ValidAt(from))
	assert.True(t, coupon.ValidAt(to))
	assert.False(t, coupon.ValidAt(to.Add(time.Second)))
}

func TestInactiveCouponNeverValid(t *testing.T) {
	coupon := Coupon{
		Code:      "SAVE10",
		Active:    false,
		ValidFrom: time.Now().AddDate(0, -1, 0),
		ValidTo:   time.Now().AddDate(0, 1, 0),
	}

	assert.False(t, coupon.ValidAt(time.Now()))
}
