package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status (per-student marking status)
======================================================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// StudentAttendance is one entry of the record's student payload.
type StudentAttendance struct {
	StudentID uuid.UUID        `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
}

/* =======================================================
   AttendanceRecordModel — maps to attendance_records

   At most one record per (course, date); the composite unique
   index is the authority when two markers race. The index is
   partial so a soft-deleted record frees its slot for re-marking.
======================================================= */

type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_course_date,where:attendance_record_deleted_at IS NULL;column:attendance_record_course_id" json:"attendance_record_course_id"`
	AttendanceRecordDate     time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_course_date;column:attendance_record_date" json:"attendance_record_date"`

	// session that authorized this marking; set by the window gate,
	// never by the caller
	AttendanceRecordSessionID *uuid.UUID `gorm:"type:uuid;column:attendance_record_session_id" json:"attendance_record_session_id,omitempty"`

	// ordered student entries, serialized as JSONB
	AttendanceRecordStudents datatypes.JSON `gorm:"type:jsonb;not null;column:attendance_record_students" json:"attendance_record_students"`

	// denormalized student ids for per-student lookups
	AttendanceRecordStudentIDs pq.StringArray `gorm:"type:text[];column:attendance_record_student_ids" json:"-"`

	AttendanceRecordNotes *string `gorm:"column:attendance_record_notes" json:"attendance_record_notes,omitempty"`

	AttendanceRecordMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_marked_by" json:"attendance_record_marked_by"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time     `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index"          json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
