package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	sessModel "akademiku_backend/internals/features/academic/class_sessions/model"
)

/* =========================
   Grace configuration
========================= */

const (
	defaultEarlyGraceMinutes = 10
	defaultLateGraceMinutes  = 15
)

// GraceConfig widens the marking window around a session's bounds.
// Built once from the environment and passed into the gate; the gate
// itself never reads process-wide state.
type GraceConfig struct {
	EarlyGraceMinutes int // pre-session tolerance
	LateGraceMinutes  int // post-session tolerance
}

func LoadGraceConfig() GraceConfig {
	return GraceConfig{
		EarlyGraceMinutes: configs.GetEnvInt("EARLY_GRACE_MINUTES", defaultEarlyGraceMinutes),
		LateGraceMinutes:  configs.GetEnvInt("LATE_GRACE_MINUTES", defaultLateGraceMinutes),
	}
}

// WindowBounds computes the grace-extended search window around ref.
func (g GraceConfig) WindowBounds(ref time.Time) (from, to time.Time) {
	from = ref.Add(-time.Duration(g.EarlyGraceMinutes) * time.Minute)
	to = ref.Add(time.Duration(g.LateGraceMinutes) * time.Minute)
	return from, to
}

/* =========================
   Window gate
========================= */

const WindowClosedReason = "attendance can only be marked during scheduled class time"

// WindowDecision is the gate's verdict for one marking attempt.
type WindowDecision struct {
	Allowed   bool
	SessionID *uuid.UUID
	Reason    string
}

// WindowGate decides whether a marking action is permitted at a given
// instant by finding a scheduled/active session of the course whose time
// range overlaps the grace-extended window. The gate trusts an
// already-authorized caller; teacher-of-course is checked at the
// operation boundary, not here.
type WindowGate struct {
	DB    *gorm.DB
	Grace GraceConfig
}

func NewWindowGate(db *gorm.DB, grace GraceConfig) *WindowGate {
	return &WindowGate{DB: db, Grace: grace}
}

// CheckAllowed evaluates the gate for courseID at ref. Elevated actors are
// always allowed with no session binding. Candidates are the course's
// scheduled/active sessions; overlap and the latest-start tie-break are
// decided in Go so one code path serves production and tests.
func (g *WindowGate) CheckAllowed(ctx context.Context, courseID uuid.UUID, ref time.Time, elevated bool) (WindowDecision, error) {
	if elevated {
		return WindowDecision{Allowed: true}, nil
	}

	var candidates []sessModel.ClassSessionModel
	err := g.DB.WithContext(ctx).
		Where("class_session_course_id = ?", courseID).
		Where("class_session_status IN ?", []sessModel.SessionStatus{
			sessModel.SessionStatusScheduled,
			sessModel.SessionStatusActive,
		}).
		Find(&candidates).Error
	if err != nil {
		return WindowDecision{}, err
	}

	from, to := g.Grace.WindowBounds(ref)

	matching := candidates[:0]
	for _, s := range candidates {
		if Overlaps(s.ClassSessionStartTime, s.ClassSessionEndTime, from, to) {
			matching = append(matching, s)
		}
	}

	best := PickLatestStart(matching)
	if best == nil {
		return WindowDecision{Allowed: false, Reason: WindowClosedReason}, nil
	}

	id := best.ClassSessionID
	return WindowDecision{Allowed: true, SessionID: &id}, nil
}

/* =========================
   Selection primitives
========================= */

// Overlaps reports whether [start, end] intersects [from, to].
func Overlaps(start, end, from, to time.Time) bool {
	return !start.After(to) && !end.Before(from)
}

// PickLatestStart selects the candidate with the latest start time; the
// deterministic tie-break when several sessions overlap the window.
func PickLatestStart(candidates []sessModel.ClassSessionModel) *sessModel.ClassSessionModel {
	var best *sessModel.ClassSessionModel
	for i := range candidates {
		if best == nil || candidates[i].ClassSessionStartTime.After(best.ClassSessionStartTime) {
			best = &candidates[i]
		}
	}
	return best
}
