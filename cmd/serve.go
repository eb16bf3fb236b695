package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/roberto426/Examen2-7234547/config"
	"github.com/roberto426/Examen2-7234547/controllers"
	"github.com/roberto426/Examen2-7234547/repository"
	"github.com/roberto426/Examen2-7234547/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API under /api. When database.auto_migrate is set the
tables are created first; when kafka.enabled is set domain events are
published to kafka.topic.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, closeDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if cfg.Database.AutoMigrate {
		log.Println("Running database migrations...")
		if err := repository.Migrate(db); err != nil {
			return err
		}
		log.Println("Database migration complete.")
	}

	publisher, closePublisher, err := newEventPublisher(cfg.Kafka)
	if err != nil {
		return err
	}
	defer closePublisher()

	app := newApp(db, publisher)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server is starting on %s", cfg.Server.Addr)
		errCh <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// newEventPublisher returns a Kafka backed publisher, or a no-op one when
// Kafka is disabled.
func newEventPublisher(cfg config.KafkaConfig) (services.IEventPublisher, func(), error) {
	if !cfg.Enabled {
		log.Println("Kafka is disabled; domain events will not be published.")
		return services.NoopEventPublisher{}, func() {}, nil
	}

	kafkaSvc, err := services.NewKafkaService(cfg.Brokers)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Kafka service: %w", err)
	}
	closeFn := func() {
		if err := kafkaSvc.Close(); err != nil {
			log.Printf("Failed to close Kafka producer: %v", err)
		}
	}
	return services.NewKafkaEventPublisher(kafkaSvc, cfg.Topic), closeFn, nil
}

func newApp(db *gorm.DB, publisher services.IEventPublisher) *fiber.App {
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	detalleRepo := repository.NewDetalleRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	app := fiber.New(fiber.Config{AppName: "tienda"})
	app.Use(recover.New())
	app.Use(logger.New())

	controllers.RegisterRoutes(app, controllers.Services{
		Clientes:  services.NewClienteService(clienteRepo, publisher),
		Productos: services.NewProductoService(productoRepo),
		Pedidos:   services.NewPedidoService(pedidoRepo, clienteRepo, publisher),
		Detalles:  services.NewDetalleService(detalleRepo),
		Reportes:  services.NewReporteService(reporteRepo),
		Ping: func(ctx context.Context) error {
			return repository.Ping(ctx, db)
		},
	})
	return app
}
