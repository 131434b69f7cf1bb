// Package webui is the server-rendered HTML surface. Every page is a
// thin shell over the ledger and report services: GET renders a list
// plus a creation form, POST creates and redirects back to the page.
package webui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
)

//go:embed views/*.html views/layouts/*.html
var viewsFS embed.FS

// NewApp builds the web UI application with all pages mounted.
func NewApp(ledgerSvc *ledger.Service, reportSvc *report.Service) *fiber.App {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// The views are embedded at build time; a failure here is a
		// packaging bug.
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	app := fiber.New(fiber.Config{
		AppName: "pennypilote-web",
		Views:   engine,
	})
	app.Use(recover.New())

	h := &handlers{ledger: ledgerSvc, report: reportSvc}
	app.Get("/", h.dashboard)
	app.Get("/users", h.usersPage)
	app.Post("/users", h.createUser)
	app.Get("/categories", h.categoriesPage)
	app.Post("/categories", h.createCategory)
	app.Get("/transactions", h.transactionsPage)
	app.Post("/transactions", h.createTransaction)

	return app
}
