package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/attendance/controller"
	"gradebook_backend/internals/features/school/attendance/service"
)

// AttendanceRoutes: /api/attendance
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(service.NewAttendanceService(db), nil)

	g := api.Group("/attendance")
	g.Post("/", ctl.Mark)
	g.Get("/student/:studentId/course/:courseId", ctl.GetForStudent)
}
