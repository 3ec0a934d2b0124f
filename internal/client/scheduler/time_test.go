package scheduler

import (
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "minute resolution",
			input: "2025-01-15T10:42",
			want:  time.Date(2025, 1, 15, 10, 42, 0, 0, time.UTC),
		},
		{
			name:  "seconds tolerated on input",
			input: "2025-01-15T10:42:30",
			want:  time.Date(2025, 1, 15, 10, 42, 30, 0, time.UTC),
		},
		{
			name:  "empty string is the zero time",
			input: "",
			want:  time.Time{},
		},
		{
			name:    "date only",
			input:   "2025-01-15",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTime(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTime(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestTimeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "minute resolution round-trips",
			in:   `"2025-01-15T10:42"`,
			out:  `"2025-01-15T10:42"`,
		},
		{
			name: "seconds truncated on output",
			in:   `"2025-01-15T10:42:30"`,
			out:  `"2025-01-15T10:42"`,
		},
		{
			name: "null decodes to zero and encodes empty",
			in:   `null`,
			out:  `""`,
		},
		{
			name: "empty string round-trips",
			in:   `""`,
			out:  `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ts Time
			if err := go_json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}

			encoded, err := go_json.Marshal(ts)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(encoded) != tt.out {
				t.Errorf("Marshal = %s, want %s", encoded, tt.out)
			}
		})
	}
}

func TestTimeUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	var ts Time
	if err := go_json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("Unmarshal of garbage timestamp succeeded, want error")
	}
}
