package service

import (
	"strings"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/academic/attendance/model"
)

// StudentRecordInput is one raw entry of a marking request. A request-level
// bulk status, when present, overrides every per-entry status.
type StudentRecordInput struct {
	StudentID string  `json:"student_id" validate:"omitempty,uuid4"`
	Status    *string `json:"status"     validate:"omitempty"`
	Remarks   *string `json:"remarks"    validate:"omitempty,max=500"`
}

// NormalizeStudentRecords resolves each entry's effective status (bulk
// override first, then the per-entry value) and silently drops entries with
// a missing/invalid student id or a status outside present|absent|late.
// The caller decides whether an empty result is an error.
func NormalizeStudentRecords(entries []StudentRecordInput, bulkStatus *string) []model.StudentAttendance {
	var bulk model.AttendanceStatus
	useBulk := false
	if bulkStatus != nil {
		bulk = model.AttendanceStatus(strings.ToLower(strings.TrimSpace(*bulkStatus)))
		useBulk = bulk.Valid()
	}

	out := make([]model.StudentAttendance, 0, len(entries))
	for _, e := range entries {
		studentID, err := uuid.Parse(strings.TrimSpace(e.StudentID))
		if err != nil || studentID == uuid.Nil {
			continue
		}

		status := bulk
		if !useBulk {
			if e.Status == nil {
				continue
			}
			status = model.AttendanceStatus(strings.ToLower(strings.TrimSpace(*e.Status)))
			if !status.Valid() {
				continue
			}
		}

		entry := model.StudentAttendance{StudentID: studentID, Status: status}
		if e.Remarks != nil {
			entry.Remarks = strings.TrimSpace(*e.Remarks)
		}
		out = append(out, entry)
	}
	return out
}

// StudentIDs extracts the denormalized id column values.
func StudentIDs(records []model.StudentAttendance) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.StudentID.String())
	}
	return out
}
