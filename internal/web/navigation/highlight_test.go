package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		current string
		route   string
		want    bool
	}{
		{"/", "/", true},
		{"/fleet", "/fleet", true},
		{"/fleet", "/", false},
		{"/", "/fleet", false},
		{"/fleet/", "/fleet", false},
		{"/FLEET", "/fleet", false},
		{"/fleet/limo", "/fleet", false},
		{"", "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.current+"|"+tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(tt.current, tt.route))
		})
	}
}

func TestIsActive_AtMostOne(t *testing.T) {
	for _, current := range []string{"/", "/fleet", "/services", "/about", "/contact", "/unknown", ""} {
		count := 0

		for _, l := range DefaultLinks {
			if IsActive(current, l.Route) {
				count++
			}
		}

		assert.LessOrEqual(t, count, 1, "current route %q", current)
	}
}

func TestHighlightClass(t *testing.T) {
	assert.Equal(t, ClassActive, HighlightClass("/fleet", "/fleet"))
	assert.Equal(t, ClassInactive, HighlightClass("/fleet", "/"))
	assert.Equal(t, ClassInactive, HighlightClass("", "/"))
}
