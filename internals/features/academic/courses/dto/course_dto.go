package dto

import (
	"time"

	"github.com/google/uuid"

	m "akademiku_backend/internals/features/academic/courses/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateCourseRequest struct {
	CourseCode      string    `json:"course_code"       validate:"required,max=40"`
	CourseName      string    `json:"course_name"       validate:"required,max=200"`
	CourseTeacherID uuid.UUID `json:"course_teacher_id" validate:"required,uuid4"`
}

// Update (partial)
type UpdateCourseRequest struct {
	CourseCode      *string    `json:"course_code"       validate:"omitempty,max=40"`
	CourseName      *string    `json:"course_name"       validate:"omitempty,max=200"`
	CourseTeacherID *uuid.UUID `json:"course_teacher_id" validate:"omitempty,uuid4"`
	CourseIsActive  *bool      `json:"course_is_active"  validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type CourseResponse struct {
	CourseID        uuid.UUID  `json:"course_id"`
	CourseCode      string     `json:"course_code"`
	CourseName      string     `json:"course_name"`
	CourseTeacherID uuid.UUID  `json:"course_teacher_id"`
	CourseIsActive  bool       `json:"course_is_active"`
	CourseCreatedAt time.Time  `json:"course_created_at"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateCourseRequest) ToModel() m.CourseModel {
	return m.CourseModel{
		CourseCode:      r.CourseCode,
		CourseName:      r.CourseName,
		CourseTeacherID: r.CourseTeacherID,
		CourseIsActive:  true,
	}
}

func (r UpdateCourseRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.CourseCode != nil {
		updates["course_code"] = *r.CourseCode
	}
	if r.CourseName != nil {
		updates["course_name"] = *r.CourseName
	}
	if r.CourseTeacherID != nil {
		updates["course_teacher_id"] = *r.CourseTeacherID
	}
	if r.CourseIsActive != nil {
		updates["course_is_active"] = *r.CourseIsActive
	}
	return updates
}

func FromCourseModel(mdl m.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:        mdl.CourseID,
		CourseCode:      mdl.CourseCode,
		CourseName:      mdl.CourseName,
		CourseTeacherID: mdl.CourseTeacherID,
		CourseIsActive:  mdl.CourseIsActive,
		CourseCreatedAt: mdl.CourseCreatedAt,
		CourseUpdatedAt: mdl.CourseUpdatedAt,
	}
}
