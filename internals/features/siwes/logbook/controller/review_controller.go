package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/logbook/dto"
	"siwes_backend/internals/features/siwes/logbook/model"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	supervisorService "siwes_backend/internals/features/siwes/supervisors/service"
	helper "siwes_backend/internals/helpers"
)

// ReviewController serves the supervisor side of the logbook: the two-tier
// forward/approve/reject chain. Supervisor actions are deliberately NOT
// gated on the student's lock flag, so review of weeks submitted before
// locking can finish in either order.
type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

/* ===================== REVIEW ===================== */
// POST /weeks/review-week
func (ctrl *ReviewController) ReviewWeek(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resolver := supervisorService.NewResolver(ctrl.DB)
	sup, err := resolver.SupervisorByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeNotSupervisor,
				"No supervisor record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load supervisor")
	}

	var req dto.ReviewWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	actor, target, err := resolveAction(sup.SupervisorType, req.Action)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if target == model.WeekStatusRejected &&
		(req.Reason == nil || strings.TrimSpace(*req.Reason) == "") {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeMissingReason,
			"A rejection requires a reason")
	}

	assigned, err := resolver.IsAssigned(sup.SupervisorID, req.StudentID, sup.SupervisorType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if !assigned {
		return helper.JsonErrorCode(c, fiber.StatusForbidden, helper.CodeNotAssigned,
			"You are not assigned to this student")
	}

	var week model.LogbookWeekModel
	err = ctrl.DB.
		Where("logbook_week_student_id = ? AND logbook_week_number = ?", req.StudentID, req.WeekNumber).
		First(&week).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Logbook week not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load logbook week")
	}

	if !model.CanTransition(week.LogbookWeekStatus, target, actor) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeIllegalTransition,
			"Week is not in a reviewable state for this action")
	}

	now := time.Now()
	week.LogbookWeekStatus = target
	switch target {
	case model.WeekStatusForwarded:
		week.LogbookWeekIndustryApprovedAt = &now
		week.LogbookWeekIndustryComment = req.Comment
		week.LogbookWeekStampRef = req.StampRef
	case model.WeekStatusApproved:
		week.LogbookWeekSchoolApprovedAt = &now
		week.LogbookWeekSchoolComment = req.Comment
		if req.Score != nil {
			week.LogbookWeekScore = req.Score
		}
	case model.WeekStatusRejected:
		week.LogbookWeekRejectionReason = req.Reason
		if actor == model.ActorIndustrySupervisor {
			week.LogbookWeekIndustryComment = req.Comment
		} else {
			week.LogbookWeekSchoolComment = req.Comment
		}
	}

	if err := ctrl.DB.Save(&week).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save review")
	}

	return helper.JsonOK(c, "Review recorded", dto.NewLogbookWeekResponse(week))
}

// resolveAction maps (supervisor type, requested action) to the state
// machine's actor and target status, rejecting cross-tier actions.
func resolveAction(supType supervisorModel.SupervisorType, action dto.ReviewAction) (model.WeekActor, model.WeekStatus, error) {
	switch action {
	case dto.ReviewActionForward:
		if supType != supervisorModel.SupervisorTypeIndustry {
			return "", "", fiber.NewError(fiber.StatusForbidden, "Only industry supervisors forward weeks")
		}
		return model.ActorIndustrySupervisor, model.WeekStatusForwarded, nil
	case dto.ReviewActionApprove:
		if supType != supervisorModel.SupervisorTypeSchool {
			return "", "", fiber.NewError(fiber.StatusForbidden, "Only school supervisors approve weeks")
		}
		return model.ActorSchoolSupervisor, model.WeekStatusApproved, nil
	case dto.ReviewActionReject:
		if supType == supervisorModel.SupervisorTypeIndustry {
			return model.ActorIndustrySupervisor, model.WeekStatusRejected, nil
		}
		return model.ActorSchoolSupervisor, model.WeekStatusRejected, nil
	default:
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Unknown review action")
	}
}
