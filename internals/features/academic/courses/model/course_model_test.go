package model

import (
	"reflect"
	"strings"
	"testing"
)

// course_code uniqueness must only bind live rows; a soft-deleted course
// should release its code for reuse.
func TestCourseCodeUniqueIndexIgnoresSoftDeleted(t *testing.T) {
	field, ok := reflect.TypeOf(CourseModel{}).FieldByName("CourseCode")
	if !ok {
		t.Fatal("CourseCode field missing")
	}
	tag := field.Tag.Get("gorm")
	if !strings.Contains(tag, "uniqueIndex:uq_courses_code") {
		t.Fatalf("unique index tag missing: %q", tag)
	}
	if !strings.Contains(tag, "where:course_deleted_at IS NULL") {
		t.Errorf("unique index is not partial on live rows: %q", tag)
	}
}
