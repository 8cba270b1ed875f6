// file: internals/route/details/deps.go
package details

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifsvc "schoolku_backend/internals/features/home/notifications/service"
	attsvc "schoolku_backend/internals/features/school/attendance/service"
	classmodel "schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

// Deps = service yang dipakai lintas group route, dirakit sekali saat boot.
type Deps struct {
	Attendance *attsvc.AttendanceService
	Notifier   *notifsvc.NotificationService
}

func BuildDeps(db *gorm.DB) *Deps {
	defaultSchedule := attsvc.ScheduleFromEnv()

	attendance := attsvc.NewAttendanceService(
		attsvc.NewGormRecordStore(db),
		attsvc.NewStagingHub(),
		attsvc.ClassifierSettings{Schedule: defaultSchedule},
	)
	// jadwal per kelas: kolom override di classes, fallback default global
	attendance.ResolveSchedule = func(ctx context.Context, classID uuid.UUID) attsvc.Schedule {
		var class classmodel.ClassModel
		err := db.WithContext(ctx).
			Select("class_start_time", "class_late_cutoff_minutes").
			First(&class, "class_id = ?", classID).Error
		if err != nil {
			// kelas tidak ketemu / DB bermasalah: jangan blokir penandaan
			return defaultSchedule
		}

		sch := defaultSchedule
		if class.ClassStartTime != nil {
			if m, perr := helper.ParseClock(*class.ClassStartTime); perr == nil {
				sch.ClassStartMinutes = m
			}
		}
		if class.ClassLateCutoffMinutes != nil {
			sch.LateCutoffMinutes = *class.ClassLateCutoffMinutes
		}
		return sch
	}

	return &Deps{
		Attendance: attendance,
		Notifier:   notifsvc.NewNotificationService(db, nil),
	}
}
