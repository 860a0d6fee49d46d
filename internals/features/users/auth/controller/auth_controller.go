package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/users/auth/dto"
	"gradebook_backend/internals/features/users/auth/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type AuthController struct {
	Svc      *service.Service
	Validate *validator.Validate
}

func NewAuthController(svc *service.Service, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &AuthController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindJSON(c, ac.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	out, err := ac.Svc.Login(reqCtx(c), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login successful", out)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ac.Svc.Logout(reqCtx(c), p, helper.GetRawAccessToken(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// GET /api/users/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ac.Svc.Me(reqCtx(c), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// PATCH /api/users/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := helper.BindJSON(c, ac.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ac.Svc.ChangePassword(reqCtx(c), p, req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}
