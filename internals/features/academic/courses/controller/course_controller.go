package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/academic/courses/dto"
	"akademiku_backend/internals/features/academic/courses/model"
	helper "akademiku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

/* ===================== CREATE ===================== */
// POST /api/a/courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course := req.ToModel()
	if err := ctrl.DB.Create(&course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "course code already exists")
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "course created", dto.FromCourseModel(course))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "no changes", dto.CourseResponse{CourseID: courseID})
	}

	var updated model.CourseModel
	tx := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", courseID).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		if helper.IsUniqueViolation(tx.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "course code already exists")
		}
		code, msg := helper.MapPGError(tx.Error)
		return helper.JsonError(c, code, msg)
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	return helper.JsonUpdated(c, "course updated", dto.FromCourseModel(updated))
}

/* ===================== DETAIL ===================== */
// GET /api/a/courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", courseID).Take(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromCourseModel(course))
}

/* ===================== LIST ===================== */
// GET /api/a/courses?teacher_id=&active=
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{})
	if raw := strings.TrimSpace(c.Query("teacher_id")); raw != "" {
		teacherID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher_id")
		}
		q = q.Where("course_teacher_id = ?", teacherID)
	}
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		q = q.Where("course_is_active = ?", raw == "true" || raw == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromCourseModel(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/courses/:id
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctrl.DB.Where("course_id = ?", courseID).Delete(&model.CourseModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": courseID})
}
