package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/teachers/dto"
	"gradebook_backend/internals/features/school/teachers/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TeacherController struct {
	Svc      *service.TeacherService
	Validate *validator.Validate
}

func NewTeacherController(svc *service.TeacherService, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &TeacherController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ CREATE ============================ */
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.TeacherCreateRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Create(reqCtx(c), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Teacher created", out)
}

/* ============================ LIST ============================ */
func (ctl *TeacherController) List(c *fiber.Ctx) error {
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
func (ctl *TeacherController) Get(c *fiber.Ctx) error {
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
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.TeacherUpdateRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Update(reqCtx(c), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher updated", out)
}

/* ============================ DELETE ============================ */
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"id": id})
}
