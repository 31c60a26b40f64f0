package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"siwes_backend/internals/features/siwes/students/dto"
	"siwes_backend/internals/features/siwes/students/model"
	"siwes_backend/internals/features/siwes/students/service"
	supervisorService "siwes_backend/internals/features/siwes/supervisors/service"
	helper "siwes_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===================== CREATE (admin) ===================== */
// POST /students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Student profile already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", dto.NewStudentResponse(m))
}

/* ===================== ME ===================== */
// GET /students/me
func (ctrl *StudentController) Me(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", dto.NewStudentResponse(*student))
}

/* ===================== UPDATE ME ===================== */
// PUT /students/me — profile edits only; lock/graded flags never change here.
func (ctrl *StudentController) UpdateMe(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.NewStudentResponse(*student))
	}

	var updated model.StudentModel
	tx := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", student.StudentID).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	return helper.JsonUpdated(c, "Profile updated", dto.NewStudentResponse(updated))
}

/* ===================== ASSIGNED (supervisor) ===================== */
// GET /students/assigned
func (ctrl *StudentController) Assigned(c *fiber.Ctx) error {
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

	ids, err := resolver.AssignedStudentIDs(sup.SupervisorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	var students []model.StudentModel
	if len(ids) > 0 {
		if err := ctrl.DB.Where("student_id IN ?", ids).
			Order("student_full_name ASC").
			Find(&students).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
		}
	}

	return helper.JsonOK(c, "", dto.NewStudentResponses(students))
}

func (ctrl *StudentController) currentStudent(c *fiber.Ctx) (*model.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	guard := service.NewLockGuard(ctrl.DB)
	student, err := guard.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student profile")
	}
	return student, nil
}
