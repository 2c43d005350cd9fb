package service

import (
	"testing"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/academic/attendance/model"
)

func strp(s string) *string { return &s }

func TestNormalizeStudentRecordsPerEntryStatus(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	got := NormalizeStudentRecords([]StudentRecordInput{
		{StudentID: a.String(), Status: strp("present")},
		{StudentID: b.String(), Status: strp(" LATE "), Remarks: strp("  bus delay  ")},
	}, nil)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].StudentID != a || got[0].Status != model.AttendancePresent {
		t.Errorf("first record = %+v", got[0])
	}
	if got[1].Status != model.AttendanceLate {
		t.Errorf("second status = %q, want late", got[1].Status)
	}
	if got[1].Remarks != "bus delay" {
		t.Errorf("remarks = %q, want trimmed", got[1].Remarks)
	}
}

func TestNormalizeStudentRecordsBulkOverride(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	got := NormalizeStudentRecords([]StudentRecordInput{
		{StudentID: a.String(), Status: strp("late")},
		{StudentID: b.String()}, // no per-entry status at all
	}, strp("absent"))

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for i, r := range got {
		if r.Status != model.AttendanceAbsent {
			t.Errorf("record %d status = %q, want bulk absent", i, r.Status)
		}
	}
}

func TestNormalizeStudentRecordsInvalidBulkIgnored(t *testing.T) {
	a := uuid.New()

	got := NormalizeStudentRecords([]StudentRecordInput{
		{StudentID: a.String(), Status: strp("present")},
	}, strp("attending"))

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Status != model.AttendancePresent {
		t.Errorf("status = %q, want per-entry present", got[0].Status)
	}
}

func TestNormalizeStudentRecordsDropsInvalidEntries(t *testing.T) {
	valid := uuid.New()

	got := NormalizeStudentRecords([]StudentRecordInput{
		{StudentID: "not-a-uuid", Status: strp("present")},
		{StudentID: uuid.Nil.String(), Status: strp("present")},
		{StudentID: uuid.New().String(), Status: strp("vacationing")},
		{StudentID: uuid.New().String()}, // no status, no bulk
		{StudentID: valid.String(), Status: strp("absent")},
	}, nil)

	if len(got) != 1 {
		t.Fatalf("got %d records, want only the valid one", len(got))
	}
	if got[0].StudentID != valid {
		t.Errorf("survivor = %s, want %s", got[0].StudentID, valid)
	}
}

func TestNormalizeStudentRecordsAllDropped(t *testing.T) {
	got := NormalizeStudentRecords([]StudentRecordInput{
		{StudentID: "", Status: strp("present")},
		{StudentID: "garbage", Status: strp("late")},
	}, nil)

	if len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
}

func TestStudentIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	ids := StudentIDs([]model.StudentAttendance{
		{StudentID: a, Status: model.AttendancePresent},
		{StudentID: b, Status: model.AttendanceAbsent},
	})

	if len(ids) != 2 || ids[0] != a.String() || ids[1] != b.String() {
		t.Errorf("ids = %v", ids)
	}
}
