package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/logbook/dto"
	"siwes_backend/internals/features/siwes/logbook/model"
	studentService "siwes_backend/internals/features/siwes/students/service"
	helper "siwes_backend/internals/helpers"
)

// WeekController serves the student side of the logbook: saving and
// submitting weekly reports.
type WeekController struct {
	DB *gorm.DB
}

func NewWeekController(db *gorm.DB) *WeekController {
	return &WeekController{DB: db}
}

/* ===================== SUBMIT / SAVE ===================== */
// POST /weeks/submit-week
func (ctrl *WeekController) SubmitWeek(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	guard := studentService.NewLockGuard(ctrl.DB)
	student, err := guard.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student profile")
	}
	if student.StudentSiwesLocked {
		return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeLocked,
			"SIWES records are locked; the logbook is closed")
	}

	var req dto.SubmitWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.WeekNumber < 1 || req.WeekNumber > 24 {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidWeekNumber,
			"Week number must be between 1 and 24")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var saved model.LogbookWeekModel
	var created bool
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		week, isNew, err := ctrl.saveWeek(tx, student.StudentID, req)
		if err != nil {
			return err
		}
		saved = *week
		created = isNew
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if created {
		return helper.JsonCreated(c, "Week saved", dto.NewLogbookWeekResponse(saved))
	}
	return helper.JsonOK(c, "Week saved", dto.NewLogbookWeekResponse(saved))
}

// saveWeek upserts the (student, week_number) row. A create losing a
// uniqueness race is retried as an update of the winning row.
func (ctrl *WeekController) saveWeek(tx *gorm.DB, studentID uuid.UUID, req dto.SubmitWeekRequest) (*model.LogbookWeekModel, bool, error) {
	var week model.LogbookWeekModel
	err := tx.
		Where("logbook_week_student_id = ? AND logbook_week_number = ?", studentID, req.WeekNumber).
		First(&week).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := model.LogbookWeekModel{
			LogbookWeekStudentID: studentID,
			LogbookWeekNumber:    req.WeekNumber,
			LogbookWeekStatus:    model.WeekStatusDraft,
		}
		applyWeekContents(&fresh, req)
		if !req.SaveOnly {
			submit(&fresh)
		}
		if err := tx.Create(&fresh).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// lost the insert race; the row exists now, update it
				if err := tx.
					Where("logbook_week_student_id = ? AND logbook_week_number = ?", studentID, req.WeekNumber).
					First(&week).Error; err != nil {
					return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Failed to load logbook week")
				}
				w, err := ctrl.updateWeek(tx, &week, req)
				return w, false, err
			}
			return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Failed to save logbook week")
		}
		return &fresh, true, nil
	}
	if err != nil {
		return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Failed to load logbook week")
	}

	w, err := ctrl.updateWeek(tx, &week, req)
	return w, false, err
}

func (ctrl *WeekController) updateWeek(tx *gorm.DB, week *model.LogbookWeekModel, req dto.SubmitWeekRequest) (*model.LogbookWeekModel, error) {
	if week.LogbookWeekStatus == model.WeekStatusApproved {
		return nil, fiber.NewError(fiber.StatusBadRequest, "An approved week can no longer be edited")
	}
	if !week.LogbookWeekStatus.StudentEditable() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Week is under review and cannot be edited")
	}

	target := week.LogbookWeekStatus
	if !req.SaveOnly {
		target = model.WeekStatusSubmitted
	}
	if !model.CanTransition(week.LogbookWeekStatus, target, model.ActorStudent) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Illegal logbook transition")
	}

	applyWeekContents(week, req)
	week.LogbookWeekStatus = target
	if target == model.WeekStatusSubmitted {
		submit(week)
	}

	if err := tx.Save(week).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save logbook week")
	}
	return week, nil
}

func applyWeekContents(week *model.LogbookWeekModel, req dto.SubmitWeekRequest) {
	week.LogbookWeekMonday = req.Monday
	week.LogbookWeekTuesday = req.Tuesday
	week.LogbookWeekWednesday = req.Wednesday
	week.LogbookWeekThursday = req.Thursday
	week.LogbookWeekFriday = req.Friday
	week.LogbookWeekSaturday = req.Saturday
	week.LogbookWeekComments = req.Comments
	// evidence list is replaced wholesale, never merged
	week.LogbookWeekEvidenceRefs = dto.EvidenceToJSON(req.EvidenceRefs)
}

func submit(week *model.LogbookWeekModel) {
	now := time.Now()
	week.LogbookWeekStatus = model.WeekStatusSubmitted
	week.LogbookWeekSubmittedAt = &now
	// a fresh submission starts a fresh review cycle
	week.LogbookWeekRejectionReason = nil
}

/* ===================== READS ===================== */
// GET /weeks/mine
func (ctrl *WeekController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	guard := studentService.NewLockGuard(ctrl.DB)
	student, err := guard.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student profile")
	}
	return ctrl.listFor(c, student.StudentID)
}

// GET /weeks/student/:studentId (supervisor read, gated in the route group)
func (ctrl *WeekController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	return ctrl.listFor(c, studentID)
}

func (ctrl *WeekController) listFor(c *fiber.Ctx, studentID uuid.UUID) error {
	var weeks []model.LogbookWeekModel
	if err := ctrl.DB.
		Where("logbook_week_student_id = ?", studentID).
		Order("logbook_week_number ASC").
		Find(&weeks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read logbook")
	}
	return helper.JsonOK(c, "", dto.NewLogbookWeekResponses(weeks))
}
