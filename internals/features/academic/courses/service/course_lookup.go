package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/academic/courses/model"
)

// TeacherOfCourse returns the teacher of record for a course.
// gorm.ErrRecordNotFound is surfaced when the course does not exist.
func TeacherOfCourse(db *gorm.DB, courseID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		TeacherID uuid.UUID `gorm:"column:course_teacher_id"`
	}
	err := db.Model(&model.CourseModel{}).
		Select("course_teacher_id").
		Where("course_id = ?", courseID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	return row.TeacherID, nil
}

// EnsureCourseActor is the single authorization boundary for course-scoped
// operations: the course must exist, and the actor must be its teacher of
// record unless isAdmin. Returns *fiber.Error (404/403) or a raw DB error.
func EnsureCourseActor(db *gorm.DB, courseID, actorID uuid.UUID, isAdmin bool) error {
	teacherID, err := TeacherOfCourse(db, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return err
	}
	if isAdmin {
		return nil
	}
	if teacherID != actorID {
		return fiber.NewError(fiber.StatusForbidden, "you are not the teacher of this course")
	}
	return nil
}
