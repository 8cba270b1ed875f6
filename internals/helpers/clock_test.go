package helper

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "16:00", want: 960},
		{in: "16:15", want: 975},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "16:60", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "16.15", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{in: 0, want: "00:00"},
		{in: 975, want: "16:15"},
		{in: 1439, want: "23:59"},
		{in: -5, want: "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Error("tanggal tidak valid harus ditolak")
	}
	if d, err := ParseDate("2025-08-17"); err != nil || d != "2025-08-17" {
		t.Errorf("ParseDate = %q, %v", d, err)
	}
}
