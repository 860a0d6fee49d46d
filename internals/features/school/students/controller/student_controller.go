package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/students/dto"
	"gradebook_backend/internals/features/school/students/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type StudentController struct {
	Svc      *service.StudentService
	Validate *validator.Validate
}

func NewStudentController(svc *service.StudentService, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &StudentController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ CREATE ============================ */
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.StudentCreateRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Create(reqCtx(c), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Student created", out)
}

/* ============================ LIST ============================ */
func (ctl *StudentController) List(c *fiber.Ctx) error {
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

// GET /students/search?query=
func (ctl *StudentController) Search(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.Search(reqCtx(c), p, c.Query("query"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}

/* ============================ GET ============================ */
func (ctl *StudentController) Get(c *fiber.Ctx) error {
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
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.StudentUpdateRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Update(reqCtx(c), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", out)
}

/* ============================ DELETE ============================ */
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}
