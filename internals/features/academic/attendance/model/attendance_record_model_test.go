package model

import (
	"reflect"
	"strings"
	"testing"
)

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{
		AttendancePresent,
		AttendanceAbsent,
		AttendanceLate,
	} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []AttendanceStatus{"", "excused", "Present"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

// The (course, date) unique index must be partial on live rows; a full
// index would let a soft-deleted record permanently block re-marking the
// same course and date.
func TestAttendanceUniqueIndexIgnoresSoftDeleted(t *testing.T) {
	field, ok := reflect.TypeOf(AttendanceRecordModel{}).FieldByName("AttendanceRecordCourseID")
	if !ok {
		t.Fatal("AttendanceRecordCourseID field missing")
	}
	tag := field.Tag.Get("gorm")
	if !strings.Contains(tag, "uniqueIndex:uq_attendance_course_date") {
		t.Fatalf("composite unique index tag missing: %q", tag)
	}
	if !strings.Contains(tag, "where:attendance_record_deleted_at IS NULL") {
		t.Errorf("unique index is not partial on live rows: %q", tag)
	}
}
