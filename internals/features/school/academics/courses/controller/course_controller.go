package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/academics/courses/dto"
	"gradebook_backend/internals/features/school/academics/courses/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type CourseController struct {
	Svc      *service.CourseService
	Validate *validator.Validate
}

func NewCourseController(svc *service.CourseService, v *validator.Validate) *CourseController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &CourseController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ CREATE ============================ */
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CourseRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Create(reqCtx(c), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Course created", out)
}

/* ============================ LIST ============================ */
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	page := helper.ParseFiber(c, helper.DefaultOpts)
	rows, total, err := ctl.Svc.List(reqCtx(c), p, page)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, page))
}

/* ============================ GET ============================ */
func (ctl *CourseController) Get(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Get(reqCtx(c), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

/* ============================ UPDATE ============================ */
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CourseRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Update(reqCtx(c), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Course updated", out)
}

/* ============================ DELETE ============================ */
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.Svc.Delete(reqCtx(c), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"id": id})
}
