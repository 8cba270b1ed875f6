package service

import (
	"time"

	"schoolku_backend/internals/configs"
	helper "schoolku_backend/internals/helpers"
)

// Status kehadiran final.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusLate || s == StatusAbsent
}

// Jadwal masuk kelas: jam mulai + toleransi terlambat.
type Schedule struct {
	ClassStartMinutes int // menit sejak 00:00, mis. 960 = 16:00
	LateCutoffMinutes int // toleransi setelah jam mulai
}

// ScheduleFromEnv membaca ATTENDANCE_CLASS_START (HH:MM) dan
// ATTENDANCE_LATE_CUTOFF_MIN; fallback 16:00 / 15 menit.
func ScheduleFromEnv() Schedule {
	s := Schedule{ClassStartMinutes: 16 * 60, LateCutoffMinutes: 15}
	if v := configs.GetEnv("ATTENDANCE_CLASS_START"); v != "" {
		if m, err := helper.ParseClock(v); err == nil {
			s.ClassStartMinutes = m
		}
	}
	if v := configs.GetEnv("ATTENDANCE_LATE_CUTOFF_MIN"); v != "" {
		n := 0
		for _, r := range v {
			if r < '0' || r > '9' {
				n = -1
				break
			}
			n = n*10 + int(r-'0')
		}
		if n >= 0 {
			s.LateCutoffMinutes = n
		}
	}
	return s
}

// ClassifierSettings = jadwal + jam dinding yang bisa di-inject di test.
type ClassifierSettings struct {
	Schedule Schedule
	Now      func() time.Time
}

func (s ClassifierSettings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Hasil klasifikasi satu aksi penandaan.
type Classification struct {
	Status         string
	ArrivalMinutes *int // nil untuk absent
	LateMinutes    int
}

// Classify menentukan status final dari aksi guru.
//   - absent: jam datang diabaikan, late 0.
//   - present tanpa jam datang: pakai jam dinding saat menandai.
//   - datang > (jam mulai + toleransi): late, keterlambatan dihitung dari
//     jam mulai (bukan dari batas toleransi).
//   - datang tepat di menit batas toleransi: masih present (perbandingan ketat >).
func Classify(status string, arrivalMinutes *int, set ClassifierSettings) Classification {
	if status == StatusAbsent {
		return Classification{Status: StatusAbsent, LateMinutes: 0}
	}

	arrival := 0
	if arrivalMinutes != nil {
		arrival = *arrivalMinutes
	} else {
		arrival = helper.ClockOf(set.now())
	}

	cutoff := set.Schedule.ClassStartMinutes + set.Schedule.LateCutoffMinutes
	if arrival > cutoff {
		return Classification{
			Status:         StatusLate,
			ArrivalMinutes: &arrival,
			LateMinutes:    arrival - set.Schedule.ClassStartMinutes,
		}
	}
	return Classification{Status: StatusPresent, ArrivalMinutes: &arrival, LateMinutes: 0}
}
