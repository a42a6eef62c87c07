package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soleus_remote/internal/capture"
	"soleus_remote/internal/handlers"
	"soleus_remote/internal/logger"
	"soleus_remote/internal/repository"
	"soleus_remote/internal/repository/db"
	"soleus_remote/internal/server"
	"soleus_remote/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, serviceConfig())
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// seed the clustering state with buttons captured in earlier sessions
	if err := services.Capture.Bootstrap(ctx); err != nil {
		log.Fatalw("failed to load captured buttons", "err", err)
	}

	// subscribe to the device log stream, if one is configured
	if sourceURL := viper.GetString("capture.source_url"); sourceURL != "" {
		listener := capture.NewListener(sourceURL, services.Capture, log)
		go listener.Run(ctx)
	} else {
		log.Infow("capture.source_url not set; live capture disabled")
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// serviceConfig maps config keys to the service layer's knobs. Zero values
// fall back to the service defaults.
func serviceConfig() service.Config {
	return service.Config{
		TransmitURL: viper.GetString("device.transmit_url"),
		SigningKey:  viper.GetString("auth.signing_key"),
		Capture: service.CaptureConfig{
			BufferSize:     viper.GetInt("capture.buffer_size"),
			MatchThreshold: viper.GetInt("capture.match_threshold"),
			Debounce:       viper.GetDuration("capture.debounce"),
		},
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "soleus.db")
		dbPath = "soleus.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the capture listener and any other background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
