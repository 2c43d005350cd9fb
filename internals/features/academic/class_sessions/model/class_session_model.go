package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status (matches class_session_status_enum in DB)
======================================================= */

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusActive, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no reschedule is allowed out of this status.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

/* =======================================================
   ClassSessionModel — maps to class_sessions
======================================================= */

type ClassSessionModel struct {
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	ClassSessionCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_course_id" json:"class_session_course_id"`

	ClassSessionStartTime time.Time `gorm:"not null;column:class_session_start_time" json:"class_session_start_time"`
	ClassSessionEndTime   time.Time `gorm:"not null;column:class_session_end_time"   json:"class_session_end_time"`

	ClassSessionStatus SessionStatus `gorm:"type:text;not null;default:'scheduled';column:class_session_status" json:"class_session_status"`

	ClassSessionRoom *string `gorm:"column:class_session_room" json:"class_session_room,omitempty"`

	// Recurrence snapshot recorded on every generated occurrence; descriptive
	// metadata, not a live link to sibling sessions.
	ClassSessionRecurrence datatypes.JSONMap `gorm:"type:jsonb;column:class_session_recurrence" json:"class_session_recurrence,omitempty"`

	ClassSessionRescheduleReason *string `gorm:"column:class_session_reschedule_reason" json:"class_session_reschedule_reason,omitempty"`
	ClassSessionCancelledReason  *string `gorm:"column:class_session_cancelled_reason"  json:"class_session_cancelled_reason,omitempty"`

	ClassSessionCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:class_session_created_by" json:"class_session_created_by"`
	ClassSessionUpdatedBy *uuid.UUID `gorm:"type:uuid;column:class_session_updated_by"          json:"class_session_updated_by,omitempty"`

	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt *time.Time     `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at,omitempty"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index"          json:"class_session_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
