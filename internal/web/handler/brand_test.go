package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/superior-limousine/website/internal/config"
)

func TestNewBrand(t *testing.T) {
	b := NewBrand(config.Brand{
		Name:            "Superior Limousine LLC",
		Tagline:         "Executive Transportation",
		Marquee:         "We wait for you",
		MarqueeRepeat:   3,
		MarqueeDuration: 10 * time.Second,
	})

	assert.Equal(t, "Superior Limousine LLC", b.Name)
	assert.Equal(t, "Executive Transportation", b.Tagline)
	assert.Contains(t, b.Marquee, "We wait for you")
	assert.Equal(t, "10s", b.MarqueeDuration)
}

func TestCSSDuration(t *testing.T) {
	assert.Equal(t, "1.5s", cssDuration(1500*time.Millisecond))
	assert.Equal(t, "90s", cssDuration(90*time.Second))
	assert.Equal(t, "0s", cssDuration(0))
}
