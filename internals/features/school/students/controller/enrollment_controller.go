package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

// POST /students/:studentId/courses/:courseId
func (ctl *StudentController) Enroll(c *fiber.Ctx) error {
	return ctl.membership(c, true)
}

// DELETE /students/:studentId/courses/:courseId
func (ctl *StudentController) Unenroll(c *fiber.Ctx) error {
	return ctl.membership(c, false)
}

func (ctl *StudentController) membership(c *fiber.Ctx, enroll bool) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := helper.ParseID(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := helper.ParseID(c, "courseId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if enroll {
		out, err := ctl.Svc.Enroll(reqCtx(c), p, studentID, courseID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.JsonOK(c, "Course enrolled", out)
	}
	out, err := ctl.Svc.Unenroll(reqCtx(c), p, studentID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Course unenrolled", out)
}

// GET /students/:id/courses
func (ctl *StudentController) EnrolledCourses(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.EnrolledCourses(reqCtx(c), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /courses/:id/students
func (ctl *StudentController) CourseStudents(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.CourseStudents(reqCtx(c), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}
