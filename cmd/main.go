package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop_api/internal/handlers"
	"shop_api/internal/logger"
	"shop_api/internal/models"
	"shop_api/internal/repository"
	"shop_api/internal/server"
	"shop_api/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, service.Config{
		BcryptCost:   viper.GetInt("auth.bcrypt_cost"),
		ProductsPath: viper.GetString("catalog.path"),
		PageSize:     viper.GetInt("catalog.page_size"),
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	// login throttle needs redis; without it the endpoint stays open
	if client := openRedis(log); client != nil {
		apiHandler.UseLoginLimiter(handlers.NewLoginRateLimiter(client, log))
	}

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := seedCatalog(ctx, repos, log); err != nil {
		log.Fatalw("failed to seed catalog", "err", err)
	}

	// drain registration notifications in the background
	go services.Notifications.Run(ctx)

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

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "shop.db")
		dbPath = "shop.db"
	}
	return repository.InitDB(dbPath)
}

// openRedis connects to redis if an address is configured; nil otherwise.
func openRedis(log *logger.Logger) *redis.Client {
	addr := viper.GetString("redis.addr")
	if addr == "" {
		log.Infow("redis.addr not set; login rate limiting disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
}

// seedCatalog loads products from the configured JSON file into an empty
// catalog. A populated catalog is left untouched.
func seedCatalog(ctx context.Context, repos *repository.Repository, log *logger.Logger) error {
	seedFile := viper.GetString("catalog.seed_file")
	if seedFile == "" {
		return nil
	}

	count, err := repos.Products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return err
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := repos.Products.Create(ctx, p); err != nil {
			return err
		}
	}
	log.Infow("catalog seeded", "file", seedFile, "products", len(products))
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
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

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
