package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/Beneficios-api/internal/application/analytics"
	"github.com/jhoicas/Beneficios-api/internal/application/form"
	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC   *usecase.AccountUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	CardUC      *usecase.CardUseCase
	BenefitUC   *usecase.BenefitUseCase
	RoleUC      *usecase.RoleUseCase
	ProfileUC   *usecase.ProfileUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Forms       *form.Manager

	CardReport    ports.CardReportGenerator
	CatalogExport ports.BenefitCatalogExporter
	GraphQL       nethttp.Handler // nil desactiva /graphql
	Session       SessionConfig
	AuthEnabled   bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.GraphQL != nil {
		gql := adaptor.HTTPHandler(deps.GraphQL)
		app.Get("/graphql", gql)
		app.Post("/graphql", gql)
	}

	api := app.Group("/api")
	api.Post("/session", NewSessionHandler(deps.Session).Create)

	// Con AUTH_ENABLED el portal cliente acepta sesiones admin y client; el admin solo admin.
	admin := api.Group("/admin")
	client := api.Group("/client")
	if deps.AuthEnabled {
		admin.Use(PortalMiddleware(deps.Session.Secret, jwt.PortalAdmin))
		client.Use(PortalMiddleware(deps.Session.Secret, jwt.PortalAdmin, jwt.PortalClient))
	}

	accountHandler := NewAccountHandler(deps.AccountUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	cardHandler := NewCardHandler(deps.CardUC)
	benefitHandler := NewBenefitHandler(deps.BenefitUC, deps.CatalogExport)
	roleHandler := NewRoleHandler(deps.RoleUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	formHandler := NewFormHandler(deps.Forms)
	reportHandler := NewReportHandler(deps.CardUC, deps.CardReport)
	profileHandler := NewProfileHandler(deps.ProfileUC)

	// Accounts
	accounts := admin.Group("/accounts")
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)
	accounts.Post("/:id/toggle", accountHandler.Toggle)
	accounts.Get("/:id/employees", accountHandler.Employees)

	// Employees
	employees := admin.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Cards
	cards := admin.Group("/cards")
	cards.Get("/", cardHandler.List)
	cards.Post("/", cardHandler.Create)
	cards.Get("/:id", cardHandler.GetByID)
	cards.Put("/:id", cardHandler.Update)
	cards.Delete("/:id", cardHandler.Delete)

	// Benefits (catalog.xml antes de /:id)
	benefits := admin.Group("/benefits")
	benefits.Get("/catalog.xml", benefitHandler.Catalog)
	benefits.Get("/", benefitHandler.List)
	benefits.Post("/", benefitHandler.Create)
	benefits.Get("/:id", benefitHandler.GetByID)
	benefits.Put("/:id", benefitHandler.Update)
	benefits.Delete("/:id", benefitHandler.Delete)

	// Roles
	roles := admin.Group("/roles")
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
	admin.Get("/permissions", roleHandler.Permissions)

	admin.Get("/dashboard", dashboardHandler.GetSummary)
	admin.Get("/reports/cards.pdf", reportHandler.CardsPDF)

	// Forms
	forms := admin.Group("/forms")
	forms.Post("/", formHandler.Open)
	forms.Get("/:id", formHandler.Get)
	forms.Patch("/:id", formHandler.SetField)
	forms.Delete("/:id", formHandler.Cancel)
	forms.Post("/:id/submit", formHandler.Submit)
	forms.Post("/:id/permissions/toggle", formHandler.TogglePermission)
	forms.Get("/:id/accounts", formHandler.SearchAccounts)
	forms.Post("/:id/accounts/focus", formHandler.FocusAccounts)
	forms.Post("/:id/accounts/close", formHandler.CloseAccounts)
	forms.Post("/:id/accounts/select", formHandler.SelectAccount)
	forms.Post("/:id/sucursales", formHandler.OpenSucursal)

	// Portal cliente (solo lectura salvo el perfil)
	client.Get("/dashboard", dashboardHandler.GetSummary)
	client.Get("/employees", employeeHandler.List)
	client.Get("/cards", cardHandler.List)
	client.Get("/benefits", benefitHandler.List)
	client.Get("/profile", profileHandler.Get)
	client.Put("/profile", profileHandler.Update)
}
