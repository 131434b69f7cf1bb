// Package user exposes the user endpoints of the JSON API.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/webapi/common"
)

// Routes mounts the user endpoints.
func Routes(app *fiber.App, ledgerSvc *ledger.Service) {
	app.Post("/users", CreateUser(ledgerSvc))
	app.Get("/users", ListUsers(ledgerSvc))
}

// CreateUser handles POST /users.
func CreateUser(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		created, err := ledgerSvc.CreateUser(c.Context(), input.Name, input.Email)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create user", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(created))
	}
}

// ListUsers handles GET /users.
func ListUsers(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := ledgerSvc.ListUsers(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list users", err)
		}
		out := make([]UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toResponse(u))
		}
		return c.JSON(out)
	}
}

func toResponse(u *dto.UserRead) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
