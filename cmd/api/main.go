package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/Beneficios-api/internal/application/analytics"
	"github.com/jhoicas/Beneficios-api/internal/application/form"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/accountsource"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Beneficios-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/seed"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/xmlcatalog"
	appgraphql "github.com/jhoicas/Beneficios-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/Beneficios-api/internal/interfaces/http"
	"github.com/jhoicas/Beneficios-api/pkg/config"
	"github.com/jhoicas/Beneficios-api/pkg/logger"
)

// stores repositorios de un driver de almacenamiento.
type stores struct {
	accounts  repository.AccountRepository
	employees repository.EmployeeRepository
	cards     repository.CardRepository
	benefits  repository.BenefitRepository
	roles     repository.RoleRepository
	profile   repository.AccountProfileRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	accountUC := usecase.NewAccountUseCase(st.accounts, st.employees)
	employeeUC := usecase.NewEmployeeUseCase(st.employees, st.accounts)
	cardUC := usecase.NewCardUseCase(st.cards)
	benefitUC := usecase.NewBenefitUseCase(st.benefits)
	roleUC := usecase.NewRoleUseCase(st.roles)
	profileUC := usecase.NewProfileUseCase(st.profile)
	dashboardUC := appanalytics.NewDashboardUseCase(st.accounts, st.employees, st.cards, st.benefits)

	// El formulario de empleados lee las cuentas con la demora configurada.
	source := accountsource.NewDelayedSource(st.accounts, cfg.Accounts.FetchDelay)
	forms := form.NewManager(form.Stores{
		Accounts:  accountUC,
		Employees: employeeUC,
		Cards:     cardUC,
		Benefits:  benefitUC,
		Roles:     roleUC,
	}, source, cfg.Forms.TTL)

	schema, err := appgraphql.NewSchema(appgraphql.Deps{
		Accounts:  accountUC,
		Employees: employeeUC,
		Cards:     cardUC,
		Benefits:  benefitUC,
		Roles:     roleUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		// Sin AUTH_ENABLED los tokens no se verifican; se firma con una clave efímera.
		secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: los tokens de sesión usan una clave efímera")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Beneficios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:     accountUC,
		EmployeeUC:    employeeUC,
		CardUC:        cardUC,
		BenefitUC:     benefitUC,
		RoleUC:        roleUC,
		ProfileUC:     profileUC,
		DashboardUC:   dashboardUC,
		Forms:         forms,
		CardReport:    infrapdf.NewMarotoPDFGenerator("Reporte de tarjetas de beneficio"),
		CatalogExport: xmlcatalog.NewExporter(),
		GraphQL:       appgraphql.NewHandler(schema),
		Session: httpRouter.SessionConfig{
			Secret:     secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
		AuthEnabled: cfg.Auth.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores construye los repositorios según STORE_DRIVER. En memoria se cargan los
// datos de ejemplo si STORE_SEED; en PostgreSQL se aplican las migraciones.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Store.Driver == config.DriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			accounts:  postgres.NewAccountRepository(pool),
			employees: postgres.NewEmployeeRepository(pool),
			cards:     postgres.NewCardRepository(pool),
			benefits:  postgres.NewBenefitRepository(pool),
			roles:     postgres.NewRoleRepository(pool),
			profile:   postgres.NewAccountProfileRepository(pool),
			close:     pool.Close,
		}, nil
	}

	f := &seed.Fixtures{}
	if cfg.Store.Seed {
		var err error
		if f, err = seed.Default(); err != nil {
			return nil, err
		}
	}
	return &stores{
		accounts:  memory.NewAccountRepository(f.Accounts...),
		employees: memory.NewEmployeeRepository(f.Employees...),
		cards:     memory.NewCardRepository(f.Cards...),
		benefits:  memory.NewBenefitRepository(f.Benefits...),
		roles:     memory.NewRoleRepository(f.Roles...),
		profile:   memory.NewAccountProfileRepository(),
		close:     func() {},
	}, nil
}
