package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessCtrl "akademiku_backend/internals/features/academic/class_sessions/controller"
)

// ClassSessionTeacherRoutes mounts the scheduling surface for teachers
// (and admins; ownership checks run per operation).
func ClassSessionTeacherRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := sessCtrl.New(db, v)

	g := r.Group("/class-sessions")
	g.Post("/", ctrl.Create)
	g.Post("/recurring", ctrl.CreateRecurring)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id/reschedule", ctrl.Reschedule)
	g.Put("/:id/status", ctrl.UpdateStatus)
}

// ClassSessionAdminRoutes mounts admin-only session operations.
func ClassSessionAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := sessCtrl.New(db, v)

	g := r.Group("/class-sessions")
	g.Delete("/:id", ctrl.Delete)
}
