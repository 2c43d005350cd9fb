package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/academic/class_sessions/model"
)

/* =========================
   Recurrence
========================= */

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Upper bound on occurrences per request, mirrors the schedule-range guard
// on the generator side. Over-cap counts are rejected, never clamped: the
// series length must always equal min(count, occurrences before until).
const maxOccurrences = 366

type Recurrence struct {
	Frequency string     // daily | weekly
	Interval  int        // normalized to >= 1
	Count     int        // normalized to >= 1
	Until     *time.Time // optional series cutoff
}

// Normalize coerces interval and count to at least 1 and lowercases the
// frequency, matching how the source treats non-positive inputs.
func (r Recurrence) Normalize() Recurrence {
	out := r
	out.Frequency = strings.ToLower(strings.TrimSpace(r.Frequency))
	if out.Interval < 1 {
		out.Interval = 1
	}
	if out.Count < 1 {
		out.Count = 1
	}
	return out
}

// Step is the gap between consecutive occurrence starts, in days.
func (r Recurrence) Step() int {
	switch r.Frequency {
	case FrequencyWeekly:
		return r.Interval * 7
	default:
		return r.Interval
	}
}

// Snapshot builds the recurrence metadata recorded on each occurrence.
func (r Recurrence) Snapshot() datatypes.JSONMap {
	out := datatypes.JSONMap{
		"frequency": r.Frequency,
		"interval":  r.Interval,
		"count":     r.Count,
	}
	if r.Until != nil {
		out["until"] = r.Until.UTC().Format(time.RFC3339)
	}
	return out
}

type Occurrence struct {
	Start time.Time
	End   time.Time
}

// ExpandOccurrences generates the occurrence series for one recurrence
// request. The series stops early (without error) when an occurrence's start
// exceeds Until; an Until before the first start yields an empty series.
func ExpandOccurrences(start, end time.Time, rec Recurrence) []Occurrence {
	rec = rec.Normalize()
	step := rec.Step()

	out := make([]Occurrence, 0, rec.Count)
	curStart, curEnd := start, end
	for i := 0; i < rec.Count; i++ {
		if rec.Until != nil && curStart.After(*rec.Until) {
			break
		}
		out = append(out, Occurrence{Start: curStart, End: curEnd})
		curStart = curStart.AddDate(0, 0, step)
		curEnd = curEnd.AddDate(0, 0, step)
	}
	return out
}

/* =========================
   Validation
========================= */

// ValidateTimeRange enforces end > start.
func ValidateTimeRange(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

/* =========================
   Lifecycle service
========================= */

type Lifecycle struct {
	DB *gorm.DB
}

func NewLifecycle(db *gorm.DB) *Lifecycle {
	return &Lifecycle{DB: db}
}

// CreateSingle inserts one scheduled session. Time-range validation is the
// caller's concern only for parsing; the range invariant is enforced here.
func (s *Lifecycle) CreateSingle(
	ctx context.Context,
	courseID uuid.UUID,
	start, end time.Time,
	room *string,
	actor uuid.UUID,
) (*model.ClassSessionModel, error) {
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := model.ClassSessionModel{
		ClassSessionCourseID:  courseID,
		ClassSessionStartTime: start,
		ClassSessionEndTime:   end,
		ClassSessionStatus:    model.SessionStatusScheduled,
		ClassSessionRoom:      room,
		ClassSessionCreatedBy: actor,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateRecurring expands the series and inserts it as one batch. Partial
// failure of the batch is not specially handled; the storage error surfaces
// as-is. An empty series (until before first start) returns an empty slice.
func (s *Lifecycle) CreateRecurring(
	ctx context.Context,
	courseID uuid.UUID,
	start, end time.Time,
	room *string,
	rec Recurrence,
	actor uuid.UUID,
) ([]model.ClassSessionModel, error) {
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec = rec.Normalize()
	if rec.Count > maxOccurrences {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("count must not exceed %d occurrences", maxOccurrences))
	}
	occurrences := ExpandOccurrences(start, end, rec)
	if len(occurrences) == 0 {
		return []model.ClassSessionModel{}, nil
	}

	snapshot := rec.Snapshot()
	rows := make([]model.ClassSessionModel, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, model.ClassSessionModel{
			ClassSessionCourseID:   courseID,
			ClassSessionStartTime:  occ.Start,
			ClassSessionEndTime:    occ.End,
			ClassSessionStatus:     model.SessionStatusScheduled,
			ClassSessionRoom:       room,
			ClassSessionRecurrence: snapshot,
			ClassSessionCreatedBy:  actor,
		})
	}

	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Reschedule overwrites the time range (and optionally the room) of a
// non-terminal session. Status is untouched.
func (s *Lifecycle) Reschedule(
	ctx context.Context,
	sessionID uuid.UUID,
	newStart, newEnd time.Time,
	reason string,
	room *string,
	actor uuid.UUID,
) (*model.ClassSessionModel, error) {
	if err := ValidateTimeRange(newStart, newEnd); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.ClassSessionModel
	if err := s.DB.WithContext(ctx).
		Where("class_session_id = ?", sessionID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return nil, err
	}

	if row.ClassSessionStatus.Terminal() {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("cannot reschedule a %s session", row.ClassSessionStatus))
	}

	updates := map[string]any{
		"class_session_start_time":        newStart,
		"class_session_end_time":          newEnd,
		"class_session_reschedule_reason": reason,
		"class_session_updated_by":        actor,
	}
	if room != nil {
		updates["class_session_room"] = *room
	}

	var updated model.ClassSessionModel
	tx := s.DB.WithContext(ctx).Model(&model.ClassSessionModel{}).
		Where("class_session_id = ?", sessionID).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &updated, nil
}

// UpdateStatus sets any valid status from any current status; there is no
// transition table (same status is an effective no-op, not an error). An
// optional reason is recorded when transitioning to cancelled.
func (s *Lifecycle) UpdateStatus(
	ctx context.Context,
	sessionID uuid.UUID,
	newStatus model.SessionStatus,
	cancelledReason *string,
	actor uuid.UUID,
) (*model.ClassSessionModel, error) {
	if !newStatus.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid session status")
	}

	updates := map[string]any{
		"class_session_status":     newStatus,
		"class_session_updated_by": actor,
	}
	if newStatus == model.SessionStatusCancelled && cancelledReason != nil {
		updates["class_session_cancelled_reason"] = *cancelledReason
	}

	var updated model.ClassSessionModel
	tx := s.DB.WithContext(ctx).Model(&model.ClassSessionModel{}).
		Where("class_session_id = ?", sessionID).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return &updated, nil
}
