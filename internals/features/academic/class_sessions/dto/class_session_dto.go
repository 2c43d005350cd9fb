package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "akademiku_backend/internals/features/academic/class_sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). Time fields are strings so the controller can report
// unparsable instants as a validation failure rather than a decode error.
type CreateClassSessionRequest struct {
	ClassSessionCourseID  uuid.UUID `json:"class_session_course_id" validate:"required,uuid4"`
	ClassSessionStartTime string    `json:"class_session_start_time" validate:"required"`
	ClassSessionEndTime   string    `json:"class_session_end_time"   validate:"required"`
	ClassSessionRoom      *string   `json:"class_session_room"       validate:"omitempty,max=120"`
}

type CreateRecurringClassSessionRequest struct {
	ClassSessionCourseID  uuid.UUID `json:"class_session_course_id" validate:"required,uuid4"`
	ClassSessionStartTime string    `json:"class_session_start_time" validate:"required"`
	ClassSessionEndTime   string    `json:"class_session_end_time"   validate:"required"`
	ClassSessionRoom      *string   `json:"class_session_room"       validate:"omitempty,max=120"`

	Frequency string  `json:"frequency" validate:"required,oneof=daily weekly"`
	Interval  *int    `json:"interval"  validate:"omitempty"`
	Count     *int    `json:"count"     validate:"omitempty"`
	Until     *string `json:"until"     validate:"omitempty"`
}

type RescheduleClassSessionRequest struct {
	ClassSessionStartTime string  `json:"class_session_start_time" validate:"required"`
	ClassSessionEndTime   string  `json:"class_session_end_time"   validate:"required"`
	Reason                string  `json:"reason"                   validate:"required,max=500"`
	ClassSessionRoom      *string `json:"class_session_room"       validate:"omitempty,max=120"`
}

type UpdateClassSessionStatusRequest struct {
	Status          string  `json:"status"           validate:"required,oneof=scheduled active completed cancelled"`
	CancelledReason *string `json:"cancelled_reason" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ClassSessionResponse struct {
	ClassSessionID       uuid.UUID       `json:"class_session_id"`
	ClassSessionCourseID uuid.UUID       `json:"class_session_course_id"`
	ClassSessionStart    time.Time       `json:"class_session_start_time"`
	ClassSessionEnd      time.Time       `json:"class_session_end_time"`
	ClassSessionStatus   m.SessionStatus `json:"class_session_status"`
	ClassSessionRoom     *string         `json:"class_session_room,omitempty"`

	ClassSessionRecurrence       datatypes.JSONMap `json:"class_session_recurrence,omitempty"`
	ClassSessionRescheduleReason *string           `json:"class_session_reschedule_reason,omitempty"`
	ClassSessionCancelledReason  *string           `json:"class_session_cancelled_reason,omitempty"`

	ClassSessionCreatedBy uuid.UUID  `json:"class_session_created_by"`
	ClassSessionUpdatedBy *uuid.UUID `json:"class_session_updated_by,omitempty"`
	ClassSessionCreatedAt time.Time  `json:"class_session_created_at"`
	ClassSessionUpdatedAt *time.Time `json:"class_session_updated_at,omitempty"`
}

type RecurringClassSessionsResponse struct {
	Count    int                    `json:"count"`
	Sessions []ClassSessionResponse `json:"sessions"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromClassSessionModel(mdl m.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID:               mdl.ClassSessionID,
		ClassSessionCourseID:         mdl.ClassSessionCourseID,
		ClassSessionStart:            mdl.ClassSessionStartTime,
		ClassSessionEnd:              mdl.ClassSessionEndTime,
		ClassSessionStatus:           mdl.ClassSessionStatus,
		ClassSessionRoom:             mdl.ClassSessionRoom,
		ClassSessionRecurrence:       mdl.ClassSessionRecurrence,
		ClassSessionRescheduleReason: mdl.ClassSessionRescheduleReason,
		ClassSessionCancelledReason:  mdl.ClassSessionCancelledReason,
		ClassSessionCreatedBy:        mdl.ClassSessionCreatedBy,
		ClassSessionUpdatedBy:        mdl.ClassSessionUpdatedBy,
		ClassSessionCreatedAt:        mdl.ClassSessionCreatedAt,
		ClassSessionUpdatedAt:        mdl.ClassSessionUpdatedAt,
	}
}

func FromClassSessionModels(rows []m.ClassSessionModel) []ClassSessionResponse {
	out := make([]ClassSessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromClassSessionModel(r))
	}
	return out
}
