package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "199.50 ر.س", Price(199.5, "ar"))
	assert.Equal(t, "SAR 199.50", Price(199.5, "en"))
	assert.Equal(t, "80 ر.س", Price(80, "ar"))
	assert.Equal(t, "SAR 1,250", Price(1250, "en"))
}

func TestPriceRoundsToHalalas(t *testing.T) {
	// a fraction that rounds up must carry into the whole part
	assert.Equal(t, "SAR 20", Price(19.999, "en"))
	assert.Equal(t, "SAR 19.99", Price(19.994, "en"))
	assert.Equal(t, "SAR 0.05", Price(0.05, "en"))
	assert.Equal(t, "SAR 1,000", Price(999.995, "en"))
}

func TestDiscount(t *testing.T) {
	assert.Equal(t, "250 ر.س", Discount(199.5, 250, "ar"))
	assert.Empty(t, Discount(100, 100, "ar"))
	assert.Empty(t, Discount(100, 0, "ar"))
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 مارس 2026", Date(ts, "ar"))
	assert.Equal(t, "Mar 5, 2026", Date(ts, "en"))
	assert.Empty(t, Date(time.Time{}, "ar"))
}
