package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/courses/controller"
	"gradebook_backend/internals/features/school/academics/courses/service"
)

// CourseRoutes: /api/courses (JWT sudah dipasang di group induk).
// The enrolled-students view of a course is mounted by the students feature.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(service.NewCourseService(db), nil)

	g := api.Group("/courses")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
