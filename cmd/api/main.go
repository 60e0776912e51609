package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/geocadastro-api/docs"
	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/application/ingestion"
	"github.com/jhoicas/geocadastro-api/internal/application/usecase"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/delimited"
	infrapdf "github.com/jhoicas/geocadastro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/storage"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/geocadastro-api/internal/interfaces/http"
	"github.com/jhoicas/geocadastro-api/pkg/config"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
	"github.com/jhoicas/geocadastro-api/pkg/metrics"
)

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --outputTypes go,json

// @title                       Geocadastro API
// @version                     1.0
// @description                 Ingestión, consulta y exportación de clientes geolocalizados.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con el prefijo "Bearer ".
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	log.Info().Int("max_conns", int(pool.Config().MaxConns)).Msg("pool PostgreSQL listo")

	m, err := metrics.New()
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	// Archivo de artefactos: opcional, solo con MINIO_ENDPOINT.
	var archive ingestion.ArtifactArchive
	if cfg.Storage.Enabled() {
		a, err := storage.NewMinIO(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MinIO")
		}
		archive = a
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("archivo de artefactos habilitado")
	}

	clienteRepo := postgres.NewClienteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, txRunner)

	ingestionUC := ingestion.NewUseCase(ingestion.Config{
		TempDir:   cfg.Ingest.TempDir,
		Delimiter: cfg.Ingest.DelimiterRune(),
	}, archive, m, log)

	formatters := []export.Formatter{
		xlsx.NewExcelizeGenerator(),
		delimited.NewCSVFormatter(),
		delimited.NewTXTFormatter(),
	}
	if cfg.Export.PDFEnabled {
		formatters = append(formatters, infrapdf.NewMarotoReportGenerator())
	} else {
		log.Warn().Msg("exportación PDF deshabilitada (EXPORT_PDF_ENABLED=false)")
	}
	exportUC := export.NewUseCase(clienteRepo, m, log, formatters...)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:      cfg.App.Name,
		BodyLimit: cfg.HTTP.BodyLimit(),
	}, log)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:   clienteUC,
		IngestionUC: ingestionUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		DB:          pool,
		Metrics:     m,
		MetricsHTTP: m.Handler(),
		SwaggerDoc:  []byte(docs.SwaggerInfo.ReadDoc()),
		Log:         log,
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
