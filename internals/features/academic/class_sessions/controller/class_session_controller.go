package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/academic/class_sessions/dto"
	"akademiku_backend/internals/features/academic/class_sessions/model"
	"akademiku_backend/internals/features/academic/class_sessions/service"
	courseSvc "akademiku_backend/internals/features/academic/courses/service"
	helper "akademiku_backend/internals/helpers"
)

type ClassSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.Lifecycle
}

func New(db *gorm.DB, v *validator.Validate) *ClassSessionController {
	return &ClassSessionController{DB: db, Validate: v, Svc: service.NewLifecycle(db)}
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

/* ===================== CREATE (single) ===================== */
// POST /api/t/class-sessions
func (ctrl *ClassSessionController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, err := helper.ParseInstant(req.ClassSessionStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start time")
	}
	end, err := helper.ParseInstant(req.ClassSessionEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end time")
	}

	if err := courseSvc.EnsureCourseActor(ctrl.DB, req.ClassSessionCourseID, actorID, helper.IsAdmin(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	row, err := ctrl.Svc.CreateSingle(c.UserContext(), req.ClassSessionCourseID, start, end, req.ClassSessionRoom, actorID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "session created", dto.FromClassSessionModel(*row))
}

/* ===================== CREATE (recurring) ===================== */
// POST /api/t/class-sessions/recurring
func (ctrl *ClassSessionController) CreateRecurring(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateRecurringClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, err := helper.ParseInstant(req.ClassSessionStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start time")
	}
	end, err := helper.ParseInstant(req.ClassSessionEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end time")
	}

	rec := service.Recurrence{Frequency: req.Frequency}
	if req.Interval != nil {
		rec.Interval = *req.Interval
	}
	if req.Count != nil {
		rec.Count = *req.Count
	}
	if req.Until != nil {
		until, err := helper.ParseInstant(*req.Until)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid until")
		}
		rec.Until = &until
	}

	if err := courseSvc.EnsureCourseActor(ctrl.DB, req.ClassSessionCourseID, actorID, helper.IsAdmin(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctrl.Svc.CreateRecurring(c.UserContext(), req.ClassSessionCourseID, start, end, req.ClassSessionRoom, rec, actorID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "recurring sessions created", dto.RecurringClassSessionsResponse{
		Count:    len(rows),
		Sessions: dto.FromClassSessionModels(rows),
	})
}

/* ===================== RESCHEDULE ===================== */
// PUT /api/t/class-sessions/:id/reschedule
func (ctrl *ClassSessionController) Reschedule(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RescheduleClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	newStart, err := helper.ParseInstant(req.ClassSessionStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start time")
	}
	newEnd, err := helper.ParseInstant(req.ClassSessionEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end time")
	}

	if err := ctrl.ensureSessionActor(c, sessionID, actorID); err != nil {
		return helper.FromFiberError(c, err)
	}

	updated, err := ctrl.Svc.Reschedule(c.UserContext(), sessionID, newStart, newEnd, req.Reason, req.ClassSessionRoom, actorID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonUpdated(c, "session rescheduled", dto.FromClassSessionModel(*updated))
}

/* ===================== UPDATE STATUS ===================== */
// PUT /api/t/class-sessions/:id/status
func (ctrl *ClassSessionController) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateClassSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.ensureSessionActor(c, sessionID, actorID); err != nil {
		return helper.FromFiberError(c, err)
	}

	updated, err := ctrl.Svc.UpdateStatus(c.UserContext(), sessionID, model.SessionStatus(req.Status), req.CancelledReason, actorID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonUpdated(c, "session status updated", dto.FromClassSessionModel(*updated))
}

/* ===================== DETAIL ===================== */
// GET /api/t/class-sessions/:id
func (ctrl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.ClassSessionModel
	if err := ctrl.DB.Where("class_session_id = ?", sessionID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromClassSessionModel(row))
}

/* ===================== LIST ===================== */
// GET /api/t/class-sessions?course_id=&status=
// Teachers must scope by course; admins may list everything.
func (ctrl *ClassSessionController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.ClassSessionModel{})

	rawCourse := strings.TrimSpace(c.Query("course_id"))
	if rawCourse == "" {
		if !helper.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id is required")
		}
	} else {
		courseID, err := uuid.Parse(rawCourse)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid course_id")
		}
		if err := courseSvc.EnsureCourseActor(ctrl.DB, courseID, actorID, helper.IsAdmin(c)); err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("class_session_course_id = ?", courseID)
	}

	if rawStatus := strings.TrimSpace(c.Query("status")); rawStatus != "" {
		status := model.SessionStatus(strings.ToLower(rawStatus))
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status")
		}
		q = q.Where("class_session_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassSessionModel
	if err := q.Order("class_session_start_time ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.FromClassSessionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/class-sessions/:id
func (ctrl *ClassSessionController) Delete(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctrl.DB.Where("class_session_id = ?", sessionID).Delete(&model.ClassSessionModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "session not found")
	}

	return helper.JsonDeleted(c, "session deleted", fiber.Map{"class_session_id": sessionID})
}

/* ===================== helpers ===================== */

// ensureSessionActor resolves the session's course and runs the single
// teacher-of-course authorization check (admins bypass).
func (ctrl *ClassSessionController) ensureSessionActor(c *fiber.Ctx, sessionID, actorID uuid.UUID) error {
	var row struct {
		CourseID uuid.UUID `gorm:"column:class_session_course_id"`
	}
	err := ctrl.DB.Model(&model.ClassSessionModel{}).
		Select("class_session_course_id").
		Where("class_session_id = ?", sessionID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return err
	}
	return courseSvc.EnsureCourseActor(ctrl.DB, row.CourseID, actorID, helper.IsAdmin(c))
}
