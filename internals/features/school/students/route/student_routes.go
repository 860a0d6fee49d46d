package route

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	"gradebook_backend/internals/features/school/students/controller"
	"gradebook_backend/internals/features/school/students/service"
)

// StudentRoutes: /api/students plus /api/courses/:id/students
func StudentRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	svc := service.NewStudentService(db, cfg.StudentSearchEnabled, logger)
	ctl := controller.NewStudentController(svc, nil)

	g := api.Group("/students")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/search", ctl.Search)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	// enrollment
	g.Get("/:id/courses", ctl.EnrolledCourses)
	g.Post("/:studentId/courses/:courseId", ctl.Enroll)
	g.Delete("/:studentId/courses/:courseId", ctl.Unenroll)

	api.Get("/courses/:id/students", ctl.CourseStudents)
}
