// Package category exposes the category endpoints of the JSON API.
package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/webapi/common"
)

// Routes mounts the category endpoints.
func Routes(app *fiber.App, ledgerSvc *ledger.Service) {
	app.Post("/categories", CreateCategory(ledgerSvc))
	app.Get("/categories", ListCategories(ledgerSvc))
}

// CreateCategory handles POST /categories.
func CreateCategory(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewCategory](c)
		if input == nil {
			return err
		}
		created, err := ledgerSvc.CreateCategory(c.Context(), input.Name, input.Description)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create category", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(created))
	}
}

// ListCategories handles GET /categories.
func ListCategories(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := ledgerSvc.ListCategories(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list categories", err)
		}
		out := make([]CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			out = append(out, toResponse(cat))
		}
		return c.JSON(out)
	}
}

func toResponse(cat *dto.CategoryRead) CategoryResponse {
	return CategoryResponse{
		ID:   cat.ID.String(),
		Name: cat.Name,
	}
}
