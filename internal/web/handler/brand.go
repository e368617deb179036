package handler

import (
	"strconv"
	"time"

	"github.com/superior-limousine/website/internal/config"
	"github.com/superior-limousine/website/internal/web/navigation"
)

// Brand is the header logo and marquee prepared for the templates.
type Brand struct {
	Name            string
	Tagline         string
	Marquee         string
	MarqueeDuration string // css time value
}

// NewBrand builds the header brand from the config.
func NewBrand(cfg config.Brand) Brand {
	return Brand{
		Name:            cfg.Name,
		Tagline:         cfg.Tagline,
		Marquee:         navigation.MarqueeText(cfg.Marquee, cfg.MarqueeRepeat),
		MarqueeDuration: cssDuration(cfg.MarqueeDuration),
	}
}

func cssDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
