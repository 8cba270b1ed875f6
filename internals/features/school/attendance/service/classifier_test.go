package service

import (
	"testing"
	"time"
)

func fixedClock(hh, mm int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 18, hh, mm, 0, 0, time.UTC)
	}
}

func defaultSettings() ClassifierSettings {
	return ClassifierSettings{
		Schedule: Schedule{ClassStartMinutes: 16 * 60, LateCutoffMinutes: 15},
		Now:      fixedClock(16, 0),
	}
}

func minutes(hh, mm int) *int {
	v := hh*60 + mm
	return &v
}

func TestClassifyBoundary(t *testing.T) {
	set := defaultSettings()

	tests := []struct {
		name       string
		arrival    *int
		wantStatus string
		wantLate   int
	}{
		{name: "tepat di batas toleransi masih present", arrival: minutes(16, 15), wantStatus: StatusPresent, wantLate: 0},
		{name: "satu menit lewat batas jadi late", arrival: minutes(16, 16), wantStatus: StatusLate, wantLate: 16},
		{name: "datang sebelum jam mulai", arrival: minutes(15, 59), wantStatus: StatusPresent, wantLate: 0},
		{name: "terlambat jauh dihitung dari jam mulai", arrival: minutes(16, 30), wantStatus: StatusLate, wantLate: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(StatusPresent, tt.arrival, set)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.LateMinutes != tt.wantLate {
				t.Errorf("lateMinutes = %d, want %d", got.LateMinutes, tt.wantLate)
			}
			if got.ArrivalMinutes == nil {
				t.Error("arrivalMinutes tidak boleh nil untuk present/late")
			}
		})
	}
}

func TestClassifyAbsentIgnoresArrival(t *testing.T) {
	set := defaultSettings()

	for _, arrival := range []*int{nil, minutes(15, 0), minutes(23, 59)} {
		got := Classify(StatusAbsent, arrival, set)
		if got.Status != StatusAbsent {
			t.Errorf("status = %s, want %s", got.Status, StatusAbsent)
		}
		if got.LateMinutes != 0 {
			t.Errorf("lateMinutes = %d, want 0", got.LateMinutes)
		}
		if got.ArrivalMinutes != nil {
			t.Error("absent tidak boleh membawa jam datang")
		}
	}
}

func TestClassifyDefaultsToWallClock(t *testing.T) {
	set := defaultSettings()
	set.Now = fixedClock(16, 40)

	got := Classify(StatusPresent, nil, set)
	if got.Status != StatusLate {
		t.Fatalf("status = %s, want %s", got.Status, StatusLate)
	}
	if got.LateMinutes != 40 {
		t.Errorf("lateMinutes = %d, want 40", got.LateMinutes)
	}
	if got.ArrivalMinutes == nil || *got.ArrivalMinutes != 16*60+40 {
		t.Errorf("arrivalMinutes = %v, want %d", got.ArrivalMinutes, 16*60+40)
	}
}

func TestClassifyCustomSchedule(t *testing.T) {
	set := ClassifierSettings{
		Schedule: Schedule{ClassStartMinutes: 7 * 60, LateCutoffMinutes: 5},
		Now:      fixedClock(7, 0),
	}

	if got := Classify(StatusPresent, minutes(7, 5), set); got.Status != StatusPresent {
		t.Errorf("07:05 dengan toleransi 5 menit harus present, dapat %s", got.Status)
	}
	if got := Classify(StatusPresent, minutes(7, 6), set); got.Status != StatusLate || got.LateMinutes != 6 {
		t.Errorf("07:06 harus late 6 menit, dapat %s %d", got.Status, got.LateMinutes)
	}
}
