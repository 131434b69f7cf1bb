// Package webapi assembles the JSON REST surface on Fiber.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
	categoryapi "github.com/pennypilote/pennypilote/webapi/category"
	"github.com/pennypilote/pennypilote/webapi/common"
	transactionapi "github.com/pennypilote/pennypilote/webapi/transaction"
	userapi "github.com/pennypilote/pennypilote/webapi/user"
)

// NewApp builds the API application with all routes mounted.
func NewApp(ledgerSvc *ledger.Service, reportSvc *report.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "pennypilote-api",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	userapi.Routes(app, ledgerSvc)
	categoryapi.Routes(app, ledgerSvc)
	transactionapi.Routes(app, ledgerSvc, reportSvc)

	return app
}
