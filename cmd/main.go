package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/adapter/apiclient"
	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/adapter/postgres"
	"github.com/YelzhanWeb/foodorder/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/foodorder/internal/adapter/terminal"
	"github.com/YelzhanWeb/foodorder/internal/app/catalog"
	"github.com/YelzhanWeb/foodorder/internal/app/fooddetails"
	"github.com/YelzhanWeb/foodorder/internal/config"
	"github.com/YelzhanWeb/foodorder/internal/domain"

	amqpAdapter "github.com/YelzhanWeb/foodorder/internal/adapter/amqp"
	httpAdapter "github.com/YelzhanWeb/foodorder/internal/adapter/http"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup (pool close, logger
// sync) happens before main reports the error.
func run(args []string) error {
	flags := flag.NewFlagSet("foodorder", flag.ContinueOnError)
	mode := flags.String("mode", "", "Service mode: api-server, order-notifier, food-details")
	configPath := flags.String("config", "config.yaml", "Path to the YAML config")
	port := flags.Int("port", 0, "HTTP port (overrides config)")
	foodID := flags.Int("food-id", 0, "Food to open (for food-details)")
	prefetch := flags.Int("prefetch", 1, "RabbitMQ prefetch count (for order-notifier)")
	seed := flags.Bool("seed", false, "Insert the sample menu on startup (for api-server)")
	logFile := flags.String("log-file", "food-details.log", "Log destination (for food-details)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *mode == "" {
		return errors.New("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Отмена по сигналу для всех режимов
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "api-server":
		lgr := logger.New(*mode)
		defer lgr.Sync()
		return runAPIServer(ctx, cfg, lgr, *seed)

	case "order-notifier":
		lgr := logger.New(*mode)
		defer lgr.Sync()
		return runOrderNotifier(ctx, cfg, lgr, *prefetch)

	case "food-details":
		if *foodID <= 0 {
			return errors.New("--food-id is required for food-details mode")
		}
		// stdout занят экраном, поэтому логи пишем в файл
		lgr := logger.NewWithOutput(*mode, *logFile)
		defer lgr.Sync()
		return runFoodDetails(ctx, cfg, lgr, *foodID)

	default:
		return fmt.Errorf("invalid mode: %s", *mode)
	}
}

func runAPIServer(ctx context.Context, cfg *config.Config, lgr logger.Logger, seed bool) error {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	service := catalog.NewService(
		postgres.NewFoodRepository(db),
		postgres.NewFavoriteRepository(db),
		postgres.NewOrderRepository(db),
		rabbitmq.NewPublisher(mqConn),
		lgr,
	)

	if seed {
		if err := service.SeedMenu(ctx, catalog.SampleMenu()); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpAdapter.NewRouter(service, lgr),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	lgr.Info("service_started", fmt.Sprintf("Food API started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	// Graceful shutdown
	go func() {
		<-ctx.Done()

		lgr.Info("shutdown_initiated", "Shutting down Food API", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
		return err
	}
	return nil
}

func runOrderNotifier(ctx context.Context, cfg *config.Config, lgr logger.Logger, prefetch int) error {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn, prefetch, lgr)
	handler := amqpAdapter.NewOrderPlacedHandler(os.Stdout, domain.BRL, lgr)

	lgr.Info("service_started", "Order Notifier started", "startup", map[string]interface{}{
		"queue":    rabbitmq.NotificationsQueue,
		"prefetch": prefetch,
	})

	if err := consumer.ConsumeOrders(ctx, handler.HandleOrderPlaced); err != nil && !errors.Is(err, context.Canceled) {
		lgr.Error("consumer_error", "Error consuming orders", "runtime", nil, err)
		return err
	}

	lgr.Info("shutdown_initiated", "Shutting down Order Notifier", "shutdown", nil)
	return nil
}

func runFoodDetails(ctx context.Context, cfg *config.Config, lgr logger.Logger, foodID int) error {
	api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)

	nav := terminal.NewNavigator(os.Stdout, api, domain.BRL, lgr)
	screen := fooddetails.NewScreen(foodID, api, nav, domain.BRL, lgr)
	defer screen.Close()

	session := terminal.NewSession(screen, nav, os.Stdout, lgr)
	if err := session.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
