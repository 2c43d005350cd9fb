package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtrl "akademiku_backend/internals/features/academic/courses/controller"
)

// CourseAdminRoutes mounts course CRUD under the admin group.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := courseCtrl.New(db, v)

	g := r.Group("/courses")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
