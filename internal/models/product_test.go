package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountWindowIsHalfOpen(t *testing.T) {
	started := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	finished := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	product := Product{Price: 1000, DiscountPercent: 20, DiscountStarted: &started, DiscountFinished: &finished}

	assert.False(t, product.DiscountActiveAt(started.Add(-time.Second)))
	assert.True(t, product.DiscountActiveAt(started))
	assert.True(t, product.DiscountActiveAt(finished.Add(-time.Second)))
	assert.False(t, product.DiscountActiveAt(finished))
}

func TestUnitPriceAt(t *testing.T) {
	started := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	finished := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	product := Product{Price: 1000, DiscountPercent: 20, DiscountStarted: &started, DiscountFinished: &finished}

	assert.Equal(t, 800.0, product.UnitPriceAt(started.Add(time.Hour)))
	assert.Equal(t, 1000.0, product.UnitPriceAt(finished.Add(time.Hour)))
}

func TestDiscountWithoutWindowIsInactive(t *testing.T) {
	started := time.Now().Add(-time.Hour)
	product := Product{Price: 500, DiscountPercent: 10, DiscountStarted: &started}

	assert.False(t, product.DiscountActiveAt(time.Now()))
	assert.Equal(t, 500.0, product.UnitPriceAt(time.Now()))
}
