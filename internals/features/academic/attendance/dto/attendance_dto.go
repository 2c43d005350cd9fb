package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	m "akademiku_backend/internals/features/academic/attendance/model"
	"akademiku_backend/internals/features/academic/attendance/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Mark (JSON). Either bulk_status applies to every listed student, or each
// entry carries its own status.
type MarkAttendanceRequest struct {
	AttendanceRecordCourseID uuid.UUID `json:"attendance_record_course_id" validate:"required,uuid4"`
	AttendanceRecordDate     string    `json:"attendance_record_date"      validate:"required"`

	StudentRecords []service.StudentRecordInput `json:"student_records" validate:"required,min=1,dive"`
	BulkStatus     *string                      `json:"bulk_status"     validate:"omitempty"`

	AttendanceRecordNotes *string `json:"attendance_record_notes" validate:"omitempty,max=1000"`
}

// Update (partial). Date changes do not re-invoke the window gate; updates
// are exempt from window validation.
type UpdateAttendanceRequest struct {
	AttendanceRecordDate      *string    `json:"attendance_record_date"       validate:"omitempty"`
	AttendanceRecordSessionID *uuid.UUID `json:"attendance_record_session_id" validate:"omitempty,uuid4"`
	AttendanceRecordNotes     *string    `json:"attendance_record_notes"      validate:"omitempty,max=1000"`

	StudentRecords []service.StudentRecordInput `json:"student_records" validate:"omitempty,dive"`
	BulkStatus     *string                      `json:"bulk_status"     validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID       uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordCourseID uuid.UUID `json:"attendance_record_course_id"`
	AttendanceRecordDate     time.Time `json:"attendance_record_date"`

	AttendanceRecordSessionID *uuid.UUID `json:"attendance_record_session_id,omitempty"`

	StudentRecords []m.StudentAttendance `json:"student_records"`

	AttendanceRecordNotes    *string   `json:"attendance_record_notes,omitempty"`
	AttendanceRecordMarkedBy uuid.UUID `json:"attendance_record_marked_by"`

	AttendanceRecordCreatedAt time.Time  `json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `json:"attendance_record_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromAttendanceRecordModel(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	var students []m.StudentAttendance
	_ = json.Unmarshal(mdl.AttendanceRecordStudents, &students)

	return AttendanceRecordResponse{
		AttendanceRecordID:        mdl.AttendanceRecordID,
		AttendanceRecordCourseID:  mdl.AttendanceRecordCourseID,
		AttendanceRecordDate:      mdl.AttendanceRecordDate,
		AttendanceRecordSessionID: mdl.AttendanceRecordSessionID,
		StudentRecords:            students,
		AttendanceRecordNotes:     mdl.AttendanceRecordNotes,
		AttendanceRecordMarkedBy:  mdl.AttendanceRecordMarkedBy,
		AttendanceRecordCreatedAt: mdl.AttendanceRecordCreatedAt,
		AttendanceRecordUpdatedAt: mdl.AttendanceRecordUpdatedAt,
	}
}

func FromAttendanceRecordModels(rows []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromAttendanceRecordModel(r))
	}
	return out
}
