// Package spark renders small braille charts for the KPI pane.
package spark

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
)

// Line renders values as a sparkline filling charWidth x charHeight
// terminal cells. Values are scaled against their maximum; an empty or
// all-zero series renders as blank cells.
func Line(values []int, charWidth, charHeight int, c color.Color) string {
	if charWidth <= 0 || charHeight <= 0 {
		return ""
	}

	var (
		dotsWidth  = charWidth * 2
		dotsHeight = charHeight * 4
	)

	maxValue := 0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}

	canvas := drawille.NewCanvas()
	if len(values) > 0 && maxValue > 0 {
		for x := range dotsWidth {
			idx := x * len(values) / dotsWidth
			v := values[idx]
			if v <= 0 {
				continue
			}
			fill := v * dotsHeight / maxValue
			if fill == 0 {
				fill = 1
			}
			for y := dotsHeight - fill; y < dotsHeight; y++ {
				canvas.Set(x, y)
			}
		}
	}

	return render(&canvas, dotsWidth, dotsHeight, c)
}

// Bar renders a horizontal fill bar of charWidth cells for a fraction in
// [0, 1].
func Bar(fraction float64, charWidth int, fill, rest color.Color) string {
	if charWidth <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction*float64(charWidth) + 0.5)

	var (
		fillStyle = lipgloss.NewStyle().Foreground(fill)
		restStyle = lipgloss.NewStyle().Foreground(rest)
	)

	return fillStyle.Render(strings.Repeat("⣿", filled)) +
		restStyle.Render(strings.Repeat("⣀", charWidth-filled))
}

func render(canvas *drawille.Canvas, dotsWidth, dotsHeight int, c color.Color) string {
	var (
		charWidth  = dotsWidth / 2
		charHeight = dotsHeight / 4
		style      = lipgloss.NewStyle().Foreground(c)
	)

	rows := canvas.Rows(0, 0, dotsWidth, dotsHeight)

	lines := make([]string, 0, charHeight)
	for i := range charHeight {
		line := ""
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		if len(runes) < charWidth {
			line += strings.Repeat(" ", charWidth-len(runes))
		} else if len(runes) > charWidth {
			line = string(runes[:charWidth])
		}
		lines = append(lines, style.Render(line))
	}

	return strings.Join(lines, "\n")
}
