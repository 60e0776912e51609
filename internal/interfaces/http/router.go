package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/application/ingestion"
	"github.com/jhoicas/geocadastro-api/internal/application/usecase"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// Pinger verifica la conexión a la base (lo implementa *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// AppConfig parámetros de la instancia Fiber.
type AppConfig struct {
	Name      string
	BodyLimit int // bytes; 0 = default de Fiber
}

// NewApp crea la app Fiber con el ErrorHandler común y recover.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *usecase.ClienteUseCase
	IngestionUC *ingestion.UseCase
	ExportUC    *export.UseCase
	JWTSecret   string
	JWTIssuer   string
	DB          Pinger       // nil = /health no consulta la base
	Metrics     HTTPRecorder // nil = sin métricas HTTP
	MetricsHTTP http.Handler // nil = sin /metrics
	SwaggerDoc  []byte       // documento generado por swag; nil = sin /docs
	Log         *logger.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(RequestID())
	app.Use(RequestLogger(log))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}

	// Swagger UI: /docs, documento en /docs/swagger.json
	if deps.SwaggerDoc != nil {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "./docs/swagger.json",
			FileContent: deps.SwaggerDoc,
			Path:        "docs",
			Title:       "Geocadastro API",
		}))
	}

	app.Get("/health", healthHandler(deps.DB))
	if deps.MetricsHTTP != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHTTP))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleResponsavel, entity.RoleOperador)

	// Ingestión: solo admin y responsavel
	ingestionHandler := NewIngestionHandler(deps.IngestionUC, log.Component("ingestion"))
	api.Post("/ingestions", RequireRole(entity.RoleAdmin, entity.RoleResponsavel), ingestionHandler.Upload)

	exportHandler := NewExportHandler(deps.ExportUC, log.Component("export"))
	api.Get("/exports", anyRole, exportHandler.Export)

	clientes := api.Group("/clientes", anyRole)
	clienteHandler := NewClienteHandler(deps.ClienteUC, log.Component("clientes"))
	clientes.Post("/validar", clienteHandler.Validate)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SERVICE_UNAVAILABLE", Message: "base de datos no disponible"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
