package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/features/school/grades/dto"
	"gradebook_backend/internals/features/school/grades/service"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type GradeController struct {
	Svc      *service.GradeService
	Validate *validator.Validate
}

func NewGradeController(svc *service.GradeService, v *validator.Validate) *GradeController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &GradeController{Svc: svc, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

type gradeKey struct {
	studentID, courseID int64
	semester            int
}

// :studentId/:courseId/:semester dari path
func parseKey(c *fiber.Ctx) (gradeKey, error) {
	studentID, err := helper.ParseID(c, "studentId")
	if err != nil {
		return gradeKey{}, err
	}
	courseID, err := helper.ParseID(c, "courseId")
	if err != nil {
		return gradeKey{}, err
	}
	sem, err := parseSemester(c.Params("semester"))
	if err != nil {
		return gradeKey{}, err
	}
	return gradeKey{studentID: studentID, courseID: courseID, semester: sem}, nil
}

// Semester 0 is allowed; only negatives and non-numbers are rejected.
func parseSemester(raw string) (int, error) {
	sem, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || sem < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "semester must be a non-negative integer")
	}
	return sem, nil
}

// POST /grades/student/:studentId/course/:courseId/semester/:semester
func (ctl *GradeController) Upsert(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	k, err := parseKey(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.GradeRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Upsert(reqCtx(c), p, k.studentID, k.courseID, k.semester, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Grades saved", out)
}

// GET /grades/student/:studentId/course/:courseId/semester/:semester
func (ctl *GradeController) Get(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	k, err := parseKey(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Get(reqCtx(c), p, k.studentID, k.courseID, k.semester)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// GET .../final
func (ctl *GradeController) Final(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	k, err := parseKey(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Final(reqCtx(c), p, k.studentID, k.courseID, k.semester)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
