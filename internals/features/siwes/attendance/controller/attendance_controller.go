package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/attendance/dto"
	"siwes_backend/internals/features/siwes/attendance/model"
	"siwes_backend/internals/features/siwes/attendance/service"
	studentService "siwes_backend/internals/features/siwes/students/service"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	supervisorService "siwes_backend/internals/features/siwes/supervisors/service"
	helper "siwes_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (ctrl *AttendanceController) currentStudent(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	guard := studentService.NewLockGuard(ctrl.DB)
	student, err := guard.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student profile")
	}
	return student.StudentID, nil
}

/* ===================== CHECK-IN ===================== */
// POST /attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	studentID, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	guard := studentService.NewLockGuard(ctrl.DB)
	if _, err := guard.EnsureNotLocked(studentID); err != nil {
		if errors.Is(err, studentService.ErrLocked) {
			return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeLocked,
				"SIWES records are locked; attendance is closed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lock state")
	}

	now := time.Now()
	today := model.DateOnly(now)

	// pre-read: the friendly duplicate path
	var existing model.AttendanceRecordModel
	err = ctrl.DB.
		Where("attendance_record_student_id = ? AND attendance_record_date = ?", studentID, today).
		First(&existing).Error
	if err == nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeAlreadyCheckedIn,
			"Already checked in today")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read attendance")
	}

	rec := model.AttendanceRecordModel{
		AttendanceRecordStudentID:   studentID,
		AttendanceRecordDate:        today,
		AttendanceRecordCheckInTime: now,
		// server clock is the timestamp source, so the record is verified
		AttendanceRecordVerified: true,
	}
	if err := ctrl.DB.Create(&rec).Error; err != nil {
		// the unique (student, date) index resolves a check-in race: the
		// losing insert takes the same duplicate path as the pre-read
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeAlreadyCheckedIn,
				"Already checked in today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record check-in")
	}

	return helper.JsonCreated(c, "Checked in", dto.NewAttendanceRecordResponse(rec))
}

/* ===================== CHECK-OUT ===================== */
// POST /attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	studentID, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	guard := studentService.NewLockGuard(ctrl.DB)
	if _, err := guard.EnsureNotLocked(studentID); err != nil {
		if errors.Is(err, studentService.ErrLocked) {
			return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeLocked,
				"SIWES records are locked; attendance is closed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lock state")
	}

	now := time.Now()
	today := model.DateOnly(now)

	var rec model.AttendanceRecordModel
	err = ctrl.DB.
		Where("attendance_record_student_id = ? AND attendance_record_date = ?", studentID, today).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeNoCheckIn,
				"No check-in recorded today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read attendance")
	}
	if rec.AttendanceRecordCheckOutTime != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeAlreadyCheckedOut,
			"Already checked out today")
	}

	// only check_out_time may change; the record is immutable after this
	if err := ctrl.DB.Model(&rec).
		Update("attendance_record_check_out_time", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record check-out")
	}
	rec.AttendanceRecordCheckOutTime = &now

	return helper.JsonOK(c, "Checked out", dto.NewAttendanceRecordResponse(rec))
}

/* ===================== TODAY ===================== */
// GET /attendance/today
func (ctrl *AttendanceController) Today(c *fiber.Ctx) error {
	studentID, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	today := model.DateOnly(time.Now())

	var rec model.AttendanceRecordModel
	err = ctrl.DB.
		Where("attendance_record_student_id = ? AND attendance_record_date = ?", studentID, today).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", dto.TodayResponse{})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read attendance")
	}

	resp := dto.NewAttendanceRecordResponse(rec)
	return helper.JsonOK(c, "", dto.TodayResponse{
		CheckedIn:  true,
		CheckedOut: rec.AttendanceRecordCheckOutTime != nil,
		Record:     &resp,
	})
}

/* ===================== HISTORY ===================== */
// GET /attendance/history
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	studentID, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.historyFor(c, studentID)
}

/* ===================== SUPERVISOR: PER-STUDENT ===================== */
// GET /attendance/student/:studentId
func (ctrl *AttendanceController) StudentAttendance(c *fiber.Ctx) error {
	sup, err := ctrl.requireSchoolSupervisor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	resolver := supervisorService.NewResolver(ctrl.DB)
	assigned, err := resolver.IsAssigned(sup.SupervisorID, studentID, supervisorModel.SupervisorTypeSchool)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if !assigned {
		return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeNotAssigned,
			"You are not assigned to this student")
	}

	guard := studentService.NewLockGuard(ctrl.DB)
	if _, err := guard.EnsureNotLocked(studentID); err != nil &&
		errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return ctrl.historyFor(c, studentID)
}

/* ===================== SUPERVISOR: SUMMARY ===================== */
// GET /attendance/supervisor/summary
func (ctrl *AttendanceController) SupervisorSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resolver := supervisorService.NewResolver(ctrl.DB)
	sup, err := resolver.SupervisorByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No supervisor record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load supervisor")
	}

	studentIDs, err := resolver.AssignedStudentIDs(sup.SupervisorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assigned students")
	}

	today := model.DateOnly(time.Now())
	stats := service.NewStatsService(ctrl.DB)
	entries := make([]dto.SummaryEntry, 0, len(studentIDs))

	for _, sid := range studentIDs {
		guard := studentService.NewLockGuard(ctrl.DB)
		student, err := guard.StudentByID(sid)
		if err != nil {
			continue // orphan assignment; skip rather than fail the summary
		}

		entry := dto.SummaryEntry{
			StudentID:       student.StudentID,
			StudentFullName: student.StudentFullName,
			MatricNumber:    student.StudentMatricNumber,
		}

		var rec model.AttendanceRecordModel
		if err := ctrl.DB.
			Where("attendance_record_student_id = ? AND attendance_record_date = ?", sid, today).
			First(&rec).Error; err == nil {
			entry.TodayCheckedIn = true
			entry.TodayCheckedOut = rec.AttendanceRecordCheckOutTime != nil
		}

		// read aggregation degrades to empty stats, never blocks the summary
		if st, err := stats.StudentStats(sid); err == nil {
			entry.Stats = st
		}

		entries = append(entries, entry)
	}

	return helper.JsonOK(c, "", entries)
}

/* ===================== internals ===================== */

func (ctrl *AttendanceController) historyFor(c *fiber.Ctx, studentID uuid.UUID) error {
	var records []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_student_id = ?", studentID).
		Order("attendance_record_date DESC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read attendance")
	}

	stats := service.NewStatsService(ctrl.DB)
	st, err := stats.StudentStats(studentID)
	if err != nil {
		// degrade to zeroed stats; the failure is already logged by gorm
		st = service.StudentStats{}
	}

	return helper.JsonOK(c, "", dto.HistoryResponse{
		Records: dto.NewAttendanceRecordResponses(records),
		Stats:   st,
	})
}

func (ctrl *AttendanceController) requireSchoolSupervisor(c *fiber.Ctx) (*supervisorModel.SupervisorModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	resolver := supervisorService.NewResolver(ctrl.DB)
	sup, err := resolver.RequireType(userID, supervisorModel.SupervisorTypeSchool)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No supervisor record")
		}
		if errors.Is(err, supervisorService.ErrNotAssigned) {
			return nil, fiber.NewError(fiber.StatusForbidden, "School supervisor record required")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load supervisor")
	}
	return sup, nil
}
