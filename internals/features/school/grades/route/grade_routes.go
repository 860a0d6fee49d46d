package route

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/grades/controller"
	"gradebook_backend/internals/features/school/grades/service"
)

// GradeRoutes: /api/grades
func GradeRoutes(api fiber.Router, db *gorm.DB, logger log.Logger) {
	ctl := controller.NewGradeController(service.NewGradeService(db, logger), nil)

	g := api.Group("/grades/student/:studentId/course/:courseId/semester/:semester")
	g.Post("/", ctl.Upsert)
	g.Get("/", ctl.Get)
	g.Get("/final", ctl.Final)
}
