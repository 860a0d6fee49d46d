package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/academics/branches/dto"
	"gradebook_backend/internals/features/school/academics/branches/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type BranchController struct {
	Svc      *service.BranchService
	Validate *validator.Validate
}

func NewBranchController(svc *service.BranchService, v *validator.Validate) *BranchController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &BranchController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ CREATE ============================ */
func (ctl *BranchController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.BranchRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Create(reqCtx(c), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Branch created", out)
}

/* ============================ LIST ============================ */
func (ctl *BranchController) List(c *fiber.Ctx) error {
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
func (ctl *BranchController) Get(c *fiber.Ctx) error {
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
func (ctl *BranchController) Update(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.BranchRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Update(reqCtx(c), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Branch updated", out)
}

/* ============================ DELETE ============================ */
func (ctl *BranchController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Branch deleted", fiber.Map{"id": id})
}
