package navigation

import (
	"strings"
)

// MarqueeSeparator separates the repeated marquee text.
const MarqueeSeparator = "•"

// MarqueeText repeats text the given times, framed and separated by bullets.
func MarqueeText(text string, repeat int) string {
	if text == "" || repeat < 1 {
		return ""
	}

	var b strings.Builder

	b.WriteString(MarqueeSeparator)

	for i := 0; i < repeat; i++ {
		b.WriteString("  ")
		b.WriteString(text)
		b.WriteString("  ")
		b.WriteString(MarqueeSeparator)
	}

	return b.String()
}
