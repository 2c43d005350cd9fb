package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/academic/attendance/dto"
	"akademiku_backend/internals/features/academic/attendance/model"
	"akademiku_backend/internals/features/academic/attendance/service"
	courseSvc "akademiku_backend/internals/features/academic/courses/service"
	helper "akademiku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Gate     *service.WindowGate
}

func New(db *gorm.DB, v *validator.Validate, gate *service.WindowGate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v, Gate: gate}
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

/* ===================== MARK ===================== */
// POST /api/t/attendance
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := helper.ParseInstant(req.AttendanceRecordDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
	}

	// single authorization boundary; the gate trusts the caller afterwards
	isAdmin := helper.IsAdmin(c)
	if err := courseSvc.EnsureCourseActor(ctrl.DB, req.AttendanceRecordCourseID, actorID, isAdmin); err != nil {
		return helper.FromFiberError(c, err)
	}

	students := service.NormalizeStudentRecords(req.StudentRecords, req.BulkStatus)
	if len(students) == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"student_records": {"no valid student entries remain"},
		})
	}

	decision, err := ctrl.Gate.CheckAllowed(c.UserContext(), req.AttendanceRecordCourseID, date, isAdmin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !decision.Allowed {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "WINDOW_CLOSED", decision.Reason)
	}

	day := helper.DateOnly(date)

	// best-effort pre-check; the unique index decides the race
	var existing model.AttendanceRecordModel
	err = ctrl.DB.
		Where("attendance_record_course_id = ? AND attendance_record_date = ?", req.AttendanceRecordCourseID, day).
		Take(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "attendance already marked for this course and date")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	payload, err := json.Marshal(students)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to encode student records")
	}

	row := model.AttendanceRecordModel{
		AttendanceRecordCourseID:   req.AttendanceRecordCourseID,
		AttendanceRecordDate:       day,
		AttendanceRecordSessionID:  decision.SessionID,
		AttendanceRecordStudents:   datatypes.JSON(payload),
		AttendanceRecordStudentIDs: pq.StringArray(service.StudentIDs(students)),
		AttendanceRecordNotes:      req.AttendanceRecordNotes,
		AttendanceRecordMarkedBy:   actorID,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "attendance already marked for this course and date")
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "attendance recorded", dto.FromAttendanceRecordModel(row))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/t/attendance/:id
// Does not re-invoke the window gate; the (course, date) uniqueness
// invariant still holds after a date change.
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	recordID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_id = ?", recordID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := courseSvc.EnsureCourseActor(ctrl.DB, row.AttendanceRecordCourseID, actorID, helper.IsAdmin(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]any{}

	if req.AttendanceRecordDate != nil {
		date, err := helper.ParseInstant(*req.AttendanceRecordDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
		}
		updates["attendance_record_date"] = helper.DateOnly(date)
	}
	if req.AttendanceRecordSessionID != nil {
		updates["attendance_record_session_id"] = *req.AttendanceRecordSessionID
	}
	if req.AttendanceRecordNotes != nil {
		updates["attendance_record_notes"] = *req.AttendanceRecordNotes
	}
	if req.StudentRecords != nil {
		students := service.NormalizeStudentRecords(req.StudentRecords, req.BulkStatus)
		if len(students) == 0 {
			return helper.JsonValidationError(c, map[string][]string{
				"student_records": {"no valid student entries remain"},
			})
		}
		payload, err := json.Marshal(students)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to encode student records")
		}
		updates["attendance_record_students"] = datatypes.JSON(payload)
		updates["attendance_record_student_ids"] = pq.StringArray(service.StudentIDs(students))
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromAttendanceRecordModel(row))
	}

	var updated model.AttendanceRecordModel
	tx := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_id = ?", recordID).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		if helper.IsUniqueViolation(tx.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "attendance already marked for this course and date")
		}
		code, msg := helper.MapPGError(tx.Error)
		return helper.JsonError(c, code, msg)
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	return helper.JsonUpdated(c, "attendance updated", dto.FromAttendanceRecordModel(updated))
}

/* ===================== DETAIL ===================== */
// GET /api/t/attendance/:id
func (ctrl *AttendanceController) GetByID(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	recordID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_id = ?", recordID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := courseSvc.EnsureCourseActor(ctrl.DB, row.AttendanceRecordCourseID, actorID, helper.IsAdmin(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "ok", dto.FromAttendanceRecordModel(row))
}

/* ===================== LIST ===================== */
// GET /api/t/attendance?course_id=&from=&to=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.AttendanceRecordModel{})

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
		q = q.Where("attendance_record_course_id = ?", courseID)
	}

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := helper.ParseInstant(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid from")
		}
		q = q.Where("attendance_record_date >= ?", helper.DateOnly(from))
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := helper.ParseInstant(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid to")
		}
		q = q.Where("attendance_record_date <= ?", helper.DateOnly(to))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.FromAttendanceRecordModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	recordID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctrl.DB.Where("attendance_record_id = ?", recordID).Delete(&model.AttendanceRecordModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	return helper.JsonDeleted(c, "attendance record deleted", fiber.Map{"attendance_record_id": recordID})
}
