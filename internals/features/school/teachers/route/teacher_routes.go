package route

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/teachers/controller"
	"gradebook_backend/internals/features/school/teachers/service"
)

// TeacherRoutes: /api/teachers
func TeacherRoutes(api fiber.Router, db *gorm.DB, logger log.Logger) {
	ctl := controller.NewTeacherController(service.NewTeacherService(db, logger), nil)

	g := api.Group("/teachers")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
