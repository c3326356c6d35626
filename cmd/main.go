package main

import (
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"pricecomparator/internal/alert"
	"pricecomparator/internal/cache"
	"pricecomparator/internal/catalog"
	"pricecomparator/internal/configuration"
	"pricecomparator/internal/database"
	"pricecomparator/internal/loader"
	"pricecomparator/internal/logger"
	"pricecomparator/internal/model"
	"pricecomparator/internal/query"
	"pricecomparator/internal/server"
	"syscall"
	"time"
)

type appLogger interface {
	Error(v ...any)
	Info(v ...any)
	Debug(v ...any)
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Infof(format string, v ...any)
	Debugf(format string, v ...any)
	Tracef(format string, v ...any)
}

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	configPath := pflag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	importOnly := pflag.Bool("import", false, "import the CSV snapshots from data_directory into MongoDB and exit")
	pflag.Parse()

	appContext, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logOutput := io.Writer(os.Stdout)
	var log appLogger = logger.NewLogger(logger.LevelInfo, logOutput)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig(*configPath)
	if err != nil {
		log.Errorf("Error getting configuration from %s: %v", *configPath, err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				log.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	log = logger.NewLogger(config.LogLevel, logOutput)

	if config.LogLevel.Enables(logger.LevelDebug) {
		conf, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			log.Error("Error marshalling Config to JSON:", err)
			return err
		}
		log.Debugf("Config:\n%s", conf)
	}

	if *importOnly {
		return importSnapshots(appContext, config, log)
	}

	products, discounts, err := loadCatalog(appContext, config, log)
	if err != nil {
		log.Error("Error loading catalog:", err)
		return err
	}
	store := catalog.New(products, discounts)
	server.SetCatalogSize(store.ProductCount(), store.DiscountCount())
	log.Infof("Catalog ready with %d product(s) and %d discount(s)", store.ProductCount(), store.DiscountCount())

	srv := server.Server{
		Query:  query.Engine{Catalog: store},
		Alerts: alert.NewTracker(store, log),
		Logger: log,
	}

	if config.RedisAddress != "" {
		c := cache.New(config.RedisAddress, config.CacheTTL, log)
		pingCtx, cancel := context.WithTimeout(appContext, 5*time.Second)
		err := c.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Errorf("Query cache disabled, err: %v", err)
			_ = c.Close()
		} else {
			log.Infof("Query cache enabled at %s, TTL: %s, generation: %s", config.RedisAddress, config.CacheTTL, c.Generation)
			defer func() {
				if err := c.Close(); err != nil {
					log.Error("Error closing Redis client:", err)
				}
			}()
			srv.Cache = &c
		}
	}

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Serving on", httpSrv.Addr)
		serveErr <- httpSrv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		log.Error("Server stopped:", err)
		return err
	case <-appContext.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server:", err)
		return err
	}
	return nil
}

func loadCatalog(ctx context.Context, config *configuration.Config, log appLogger) ([]model.Product, []model.Discount, error) {
	switch config.CatalogSource {
	case configuration.CatalogSourceMongoDB:
		log.Info("Loading catalog from DB at", config.DatabaseURI)
		dbConn, db, err := database.ConnectDB(ctx, config.DatabaseURI, config.DatabaseName)
		if err != nil {
			return nil, nil, err
		}
		defer func() {
			if err := dbConn.Disconnect(context.Background()); err != nil {
				log.Error("Error disconnecting from DB:", err)
			}
		}()
		products, err := db.ProductsFindAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		discounts, err := db.DiscountsFindAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return products, discounts, nil
	case configuration.CatalogSourceCSV:
		log.Info("Loading catalog from", config.DataDirectory)
		l := loader.Loader{Logger: log, Workers: config.LoaderWorkers}
		return l.Load(ctx, config.DataDirectory)
	}
	return nil, nil, errors.Errorf("unknown catalog source: %s", config.CatalogSource)
}

func importSnapshots(ctx context.Context, config *configuration.Config, log appLogger) error {
	l := loader.Loader{Logger: log, Workers: config.LoaderWorkers}
	products, discounts, err := l.Load(ctx, config.DataDirectory)
	if err != nil {
		log.Error("Error loading snapshots:", err)
		return err
	}

	log.Info("Connecting to DB at", config.DatabaseURI)
	dbConn, db, err := database.ConnectDB(ctx, config.DatabaseURI, config.DatabaseName)
	if err != nil {
		log.Error("Error connecting to DB:", err)
		return err
	}
	defer func() {
		if err := dbConn.Disconnect(context.Background()); err != nil {
			log.Error("Error disconnecting from DB:", err)
		}
	}()

	if err = db.ImportSnapshots(ctx, products, discounts); err != nil {
		log.Error("Error importing snapshots:", err)
		return err
	}
	log.Infof("Imported %d product(s) and %d discount(s) into %s", len(products), len(discounts), config.DatabaseName)
	return nil
}
