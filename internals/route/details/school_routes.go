package details

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	branchRoute "gradebook_backend/internals/features/school/academics/branches/route"
	courseRoute "gradebook_backend/internals/features/school/academics/courses/route"
	attendanceRoute "gradebook_backend/internals/features/school/attendance/route"
	gradeRoute "gradebook_backend/internals/features/school/grades/route"
	studentRoute "gradebook_backend/internals/features/school/students/route"
	teacherRoute "gradebook_backend/internals/features/school/teachers/route"
)

// SchoolRoutes mounts every school resource on the JWT-protected group.
// Role checks happen inside the services.
func SchoolRoutes(private fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	branchRoute.BranchRoutes(private, db)
	courseRoute.CourseRoutes(private, db)
	studentRoute.StudentRoutes(private, db, cfg, logger)
	teacherRoute.TeacherRoutes(private, db, logger)
	gradeRoute.GradeRoutes(private, db, logger)
	attendanceRoute.AttendanceRoutes(private, db)
}
