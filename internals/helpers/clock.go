// file: internals/helpers/clock.go
package helper

import (
	"fmt"
	"time"
)

// Jam dinding "HH:MM" dipakai di banyak tempat (jam masuk, jadwal pelajaran).
// Disimpan & dipindah-pindah sebagai menit sejak 00:00 supaya gampang dibanding.

// ParseClock memvalidasi string "HH:MM" (00-23 / 00-59) → menit sejak 00:00.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("format jam harus HH:MM")
	}
	h, m := 0, 0
	for _, r := range s[:2] {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("format jam harus HH:MM")
		}
		h = h*10 + int(r-'0')
	}
	for _, r := range s[3:] {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("format jam harus HH:MM")
		}
		m = m*10 + int(r-'0')
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("jam %q di luar rentang 00:00-23:59", s)
	}
	return h*60 + m, nil
}

// FormatClock kebalikan ParseClock.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockOf mengambil menit-sejak-00:00 dari sebuah time.Time (zona waktu t).
func ClockOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DateOf memformat tanggal kalender YYYY-MM-DD (tanpa komponen waktu).
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate memvalidasi tanggal YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("format tanggal harus YYYY-MM-DD")
	}
	return DateOf(t), nil
}
