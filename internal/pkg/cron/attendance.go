package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
)

// AttendanceJobs wires the attendance auto-marker into the scheduler.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_mark_attendance", 1*time.Hour, j.AutoMarkAttendance)
}

// AutoMarkAttendance marks all active staff present once per day. The
// service skips the write when any record already exists for today, so
// hourly runs are idempotent.
func (j *AttendanceJobs) AutoMarkAttendance(ctx context.Context) error {
	marked, err := j.attendanceService.AutoMarkToday(ctx)
	if err != nil {
		return err
	}

	if marked > 0 {
		slog.Info("Cron: auto-marked attendance", "staff_marked", marked)
	}

	return nil
}
