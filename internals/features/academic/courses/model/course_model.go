package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// partial unique index so a soft-deleted course releases its code
	CourseCode string `gorm:"not null;uniqueIndex:uq_courses_code,where:course_deleted_at IS NULL;column:course_code" json:"course_code"`
	CourseName string `gorm:"not null;column:course_name"             json:"course_name"`

	// teacher of record; authorization for sessions and attendance keys off this
	CourseTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:course_teacher_id" json:"course_teacher_id"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"          json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
