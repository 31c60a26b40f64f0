package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/supervisors/dto"
	"siwes_backend/internals/features/siwes/supervisors/service"
	helper "siwes_backend/internals/helpers"
)

type SupervisorController struct {
	DB *gorm.DB
}

func NewSupervisorController(db *gorm.DB) *SupervisorController {
	return &SupervisorController{DB: db}
}

/* ===================== CREATE (admin) ===================== */
// POST /supervisors
func (ctrl *SupervisorController) Create(c *fiber.Ctx) error {
	var req dto.CreateSupervisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Supervisor already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create supervisor")
	}
	return helper.JsonCreated(c, "Supervisor created", dto.NewSupervisorResponse(m))
}

/* ===================== ASSIGN (admin) ===================== */
// POST /assignments
func (ctrl *SupervisorController) Assign(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignment already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created", dto.NewAssignmentResponse(m))
}

/* ===================== ME ===================== */
// GET /supervisors/me
func (ctrl *SupervisorController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resolver := service.NewResolver(ctrl.DB)
	sup, err := resolver.SupervisorByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No supervisor record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load supervisor")
	}

	return helper.JsonOK(c, "", dto.NewSupervisorResponse(*sup))
}
