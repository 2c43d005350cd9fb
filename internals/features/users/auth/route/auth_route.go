package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "akademiku_backend/internals/features/users/auth/controller"
	"akademiku_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth surface (login only; registration is
// admin-scoped and mounted by AdminUserRoutes).
func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := authCtrl.New(db, v)

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AdminUserRoutes mounts user registration under the admin group.
func AdminUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := authCtrl.New(db, v)

	g := r.Group("/users")
	g.Post("/", ctrl.Register)
}
