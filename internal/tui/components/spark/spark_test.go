package spark

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLineDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		width  int
		height int
	}{
		{
			name:   "ramp",
			values: []int{1, 2, 3, 4, 5, 6, 7, 8},
			width:  24,
			height: 3,
		},
		{
			name:   "single value",
			values: []int{5},
			width:  10,
			height: 2,
		},
		{
			name:   "empty series",
			values: nil,
			width:  10,
			height: 2,
		},
		{
			name:   "all zero",
			values: []int{0, 0, 0},
			width:  8,
			height: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := Line(tt.values, tt.width, tt.height, lipgloss.Color("6"))

			if got := lipgloss.Height(out); got != tt.height {
				t.Errorf("Height = %d, want %d", got, tt.height)
			}
			for i, line := range strings.Split(out, "\n") {
				if got := lipgloss.Width(line); got != tt.width {
					t.Errorf("Width(line %d) = %d, want %d", i, got, tt.width)
				}
			}
		})
	}
}

func TestLineRejectsDegenerateSize(t *testing.T) {
	t.Parallel()

	if out := Line([]int{1, 2}, 0, 3, lipgloss.Color("6")); out != "" {
		t.Errorf("Line with zero width = %q, want empty", out)
	}
	if out := Line([]int{1, 2}, 3, 0, lipgloss.Color("6")); out != "" {
		t.Errorf("Line with zero height = %q, want empty", out)
	}
}

func TestBarFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fraction   float64
		width      int
		wantFilled int
	}{
		{
			name:       "empty",
			fraction:   0,
			width:      10,
			wantFilled: 0,
		},
		{
			name:       "half",
			fraction:   0.5,
			width:      10,
			wantFilled: 5,
		},
		{
			name:       "full",
			fraction:   1,
			width:      10,
			wantFilled: 10,
		},
		{
			name:       "rounds to nearest cell",
			fraction:   0.24,
			width:      10,
			wantFilled: 2,
		},
		{
			name:       "clamped below",
			fraction:   -3,
			width:      10,
			wantFilled: 0,
		},
		{
			name:       "clamped above",
			fraction:   7,
			width:      10,
			wantFilled: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := Bar(tt.fraction, tt.width, lipgloss.Color("2"), lipgloss.Color("8"))

			if got := lipgloss.Width(out); got != tt.width {
				t.Errorf("Width = %d, want %d", got, tt.width)
			}
			if got := strings.Count(out, "⣿"); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", got, tt.wantFilled)
			}
		})
	}
}
