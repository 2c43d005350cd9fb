package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "akademiku_backend/internals/features/academic/attendance/controller"
	"akademiku_backend/internals/features/academic/attendance/service"
)

// AttendanceTeacherRoutes mounts the marking surface for teachers (and
// admins; ownership checks run per operation).
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, gate *service.WindowGate) {
	ctrl := attCtrl.New(db, v, gate)

	g := r.Group("/attendance")
	g.Post("/", ctrl.Mark)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
}

// AttendanceAdminRoutes mounts admin-only attendance operations.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, gate *service.WindowGate) {
	ctrl := attCtrl.New(db, v, gate)

	g := r.Group("/attendance")
	g.Delete("/:id", ctrl.Delete)
}
