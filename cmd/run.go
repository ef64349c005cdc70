package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"bethouse/api"
	"bethouse/config"
	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/events"
	"bethouse/infrastructure"
	"bethouse/infrastructure/observability"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting bethouse...")

	// Load configuration
	cfg := config.Get()

	// Initialize metrics
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize NATS
	log.Printf("Connecting to NATS at %s...", cfg.NATSServers)
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	subjectMapper := infrastructure.NewEventSubjectMapper()
	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, subjectMapper)
	if err := eventPublisher.EnsureDomainEventStream(); err != nil {
		return fmt.Errorf("failed to ensure domain event stream: %w", err)
	}
	log.Println("NATS event publisher initialized successfully")

	// Settlement summaries go to the audit log in-process, alongside the
	// NATS publish
	eventPublisher.RegisterLocalHandler(events.EventTypeEventSettled, func(ctx context.Context, event events.Event) error {
		settled, ok := event.(events.EventSettledEvent)
		if !ok {
			return nil
		}
		log.Printf("Event %d settled: %d bets, %d winners, %s paid to team %s",
			settled.EventID, settled.BetsSettled, settled.Winners,
			entities.FormatAmount(settled.TotalPaid), settled.WinningTeam)
		return nil
	})

	// Owner notifications consume the rejection subject durably
	notifier := infrastructure.NewRejectionNotifier()
	if err := notifier.Start(natsClient, subjectMapper); err != nil {
		return fmt.Errorf("failed to start rejection notifier: %w", err)
	}

	// Initialize unit of work factory
	uowFactory := infrastructure.NewUnitOfWorkFactoryWrapper(db, eventPublisher)

	// Start HTTP server
	server := api.NewServer(uowFactory, cfg)
	log.Printf("Service is running in %s mode...", cfg.Environment)
	serveErr := server.Run(ctx)

	// Cleanup resources
	log.Println("Shutting down...")

	if err := natsClient.Close(); err != nil {
		log.Printf("Error closing NATS client: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics provider: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")

	return serveErr
}
