package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/branches/controller"
	"gradebook_backend/internals/features/school/academics/branches/service"
)

// BranchRoutes: /api/branches (JWT sudah dipasang di group induk)
func BranchRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(service.NewBranchService(db), nil)

	g := api.Group("/branches")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
