package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	attRoute "akademiku_backend/internals/features/academic/attendance/route"
	attService "akademiku_backend/internals/features/academic/attendance/service"
	sessRoute "akademiku_backend/internals/features/academic/class_sessions/route"
	courseRoute "akademiku_backend/internals/features/academic/courses/route"
	authRoute "akademiku_backend/internals/features/users/auth/route"
	authMW "akademiku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()
	gate := attService.NewWindowGate(db, attService.LoadGraceConfig())

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db, v)

	// ===================== TEACHER (teacher + admin) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMW.AuthMiddleware(),
		authMW.OnlyRoles(constants.RoleErrorTeacher("academic records"), constants.TeacherAndAbove...),
	)
	sessRoute.ClassSessionTeacherRoutes(teacher, db, v)
	attRoute.AttendanceTeacherRoutes(teacher, db, v, gate)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMW.AuthMiddleware(),
		authMW.OnlyRoles(constants.RoleErrorAdmin("administration"), constants.AdminOnly...),
	)
	authRoute.AdminUserRoutes(admin, db, v)
	courseRoute.CourseAdminRoutes(admin, db, v)
	sessRoute.ClassSessionAdminRoutes(admin, db, v)
	attRoute.AttendanceAdminRoutes(admin, db, v, gate)
}
