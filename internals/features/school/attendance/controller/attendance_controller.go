package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/attendance/dto"
	"gradebook_backend/internals/features/school/attendance/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type AttendanceController struct {
	Svc      *service.AttendanceService
	Validate *validator.Validate
}

func NewAttendanceController(svc *service.AttendanceService, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &AttendanceController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// POST /attendance
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.AttendanceRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Mark(reqCtx(c), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Attendance marked", out)
}

// GET /attendance/student/:studentId/course/:courseId
func (ctl *AttendanceController) GetForStudent(c *fiber.Ctx) error {
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
	rows, err := ctl.Svc.GetForStudent(reqCtx(c), p, studentID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}
