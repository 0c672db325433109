package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/pkg/kafka"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
	"github.com/rocketscienceinc/connectfour-backend/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	snapshots, closer, err := openSnapshots(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close snapshot storage", "error", err)
		}
	}()

	producer := kafka.NewProducer(logger, conf.Kafka.Brokers, conf.Kafka.Topic)
	defer func() {
		if err = producer.Close(); err != nil {
			log.Error("could not close kafka producer", "error", err)
		}
	}()

	publishers := usecase.Publishers{producer}

	var feed http.Handler
	if conf.Websocket.Enabled {
		hub := websocket.NewHub(logger)
		defer hub.Close()

		publishers = append(publishers, hub)
		feed = hub
	}

	gameManager := usecase.NewGameManager(logger, snapshots, publishers)

	server, err := rest.New(logger, conf.HTTPPort, gameManager, feed)
	if err != nil {
		return fmt.Errorf("could not create HTTP server: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	return nil
}

// openSnapshots - connects the snapshot store selected by the storage driver.
func openSnapshots(ctx context.Context, conf *config.Config) (repository.SnapshotRepository, io.Closer, error) {
	switch conf.Storage.Driver {
	case config.DriverPostgres:
		conn, err := storage.NewPostgres(ctx, conf.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}
		return repository.NewPostgresSnapshotRepository(conn), conn, nil

	case config.DriverRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		client, err := storage.NewRedis(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		return repository.NewRedisSnapshotRepository(client), client, nil

	default:
		conn, err := storage.NewSQLite(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		return repository.NewSQLiteSnapshotRepository(conn), conn, nil
	}
}
