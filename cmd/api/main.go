package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
	infrapdf "github.com/tu-usuario/notas-venta-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/notas-venta-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/notas-venta-api/internal/infrastructure/s3store"
	infrasns "github.com/tu-usuario/notas-venta-api/internal/infrastructure/sns"
	httpRouter "github.com/tu-usuario/notas-venta-api/internal/interfaces/http"
	"github.com/tu-usuario/notas-venta-api/pkg/config"
	"github.com/tu-usuario/notas-venta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	clienteRepo := postgres.NewClienteRepository(pool)
	direccionRepo := postgres.NewDireccionRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	notaRepo := postgres.NewNotaVentaRepository(pool)
	itemRepo := postgres.NewNotaVentaItemRepository(pool)

	// Clientes AWS: S3 para los PDF, SNS para los avisos. Con BLOB_ENDPOINT
	// definido (MinIO local) se fuerza el direccionamiento por ruta.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Blob.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("configuración AWS")
	}
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.Blob.PathStyle
		if cfg.Blob.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Blob.Endpoint)
		}
	})
	snsClient := awssns.NewFromConfig(awsCfg, func(o *awssns.Options) {
		o.Region = cfg.Notif.Region
	})

	blob := s3store.New(s3Client, cfg.Blob.Bucket)
	notificador := infrasns.New(snsClient, cfg.Notif.TopicARN)
	generador := infrapdf.NewMarotoNotaGenerator()
	almacen := notas.NewAlmacenDocumentos(blob)

	clienteUC := catalogo.NewClienteUseCase(clienteRepo)
	direccionUC := catalogo.NewDireccionUseCase(direccionRepo)
	productoUC := catalogo.NewProductoUseCase(productoRepo)

	validador := notas.NewValidadorReferencias(clienteRepo, direccionRepo)
	notaUC := notas.NewNotaUseCase(validador, notaRepo, itemRepo, clienteRepo)
	agregarUC := notas.NewAgregarItemsUseCase(
		notaRepo, itemRepo, clienteRepo, productoRepo,
		generador, almacen, notificador, cfg.App.PublicBaseURL, log,
	)
	descargaUC := notas.NewDescargaUseCase(notaRepo, clienteRepo, blob, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:   clienteUC,
		DireccionUC: direccionUC,
		ProductoUC:  productoUC,
		NotaUC:      notaUC,
		AgregarUC:   agregarUC,
		DescargaUC:  descargaUC,
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
