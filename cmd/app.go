// Package cmd wires the application together: configuration, logger,
// storage backend, services, controllers and the HTTP server.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"comedor/api"
	catalogctrl "comedor/api/catalog"
	healthctrl "comedor/api/health"
	orderctrl "comedor/api/order"
	userctrl "comedor/api/user"
	catalogapp "comedor/application/catalog"
	orderapp "comedor/application/order"
	userapp "comedor/application/user"
	"comedor/config"
	"comedor/domain/catalog"
	"comedor/domain/order"
	"comedor/domain/shared"
	"comedor/domain/user"
	"comedor/infrastructure/credentials"
	"comedor/infrastructure/persistence/memory"
	"comedor/infrastructure/persistence/mysql"
	"comedor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App is the composed application.
type App struct {
	cfg    *config.Config
	engine *gin.Engine
}

type repositories struct {
	orders     order.Repository
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	users      user.Repository
	addresses  user.AddressRepository
	uow        shared.UnitOfWork
	db         *gorm.DB // nil for the memory backend
}

// NewApp loads configuration and builds the full dependency graph.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	verifier := credentials.NewBcryptVerifier(bcrypt.DefaultCost)

	orderService := orderapp.NewService(repos.orders, repos.products, repos.users, repos.addresses, repos.uow)
	catalogService := catalogapp.NewService(repos.products, repos.categories)
	userService := userapp.NewService(repos.users, repos.addresses, verifier)

	engine := api.NewRouter(cfg, api.Controllers{
		Order:   orderctrl.NewController(orderService),
		Catalog: catalogctrl.NewController(catalogService),
		User:    userctrl.NewController(userService),
		Health:  healthctrl.NewController(repos.db, cfg.App.Name, cfg.App.Version),
	})

	return &App{cfg: cfg, engine: engine}, nil
}

func buildRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.Database.Type == "mysql" {
		mysqlCfg := mysql.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			Username:        cfg.Database.Username,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.Database,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
			LogLevel:        cfg.Database.LogLevel,
		}
		db, err := mysqlCfg.Connect()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := mysql.AutoMigrate(db); err != nil {
				return nil, err
			}
		}
		logger.Info("using mysql persistence",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database))

		return &repositories{
			orders:     mysql.NewOrderRepository(db),
			products:   mysql.NewProductRepository(db),
			categories: mysql.NewCategoryRepository(db),
			users:      mysql.NewUserRepository(db),
			addresses:  mysql.NewAddressRepository(db),
			uow:        mysql.NewUnitOfWork(db),
			db:         db,
		}, nil
	}

	logger.Info("using in-memory persistence")
	store := memory.NewStore()
	return &repositories{
		orders:     memory.NewOrderRepository(store),
		products:   memory.NewProductRepository(store),
		categories: memory.NewCategoryRepository(store),
		users:      memory.NewUserRepository(store),
		addresses:  memory.NewAddressRepository(store),
		uow:        memory.NewUnitOfWork(store),
	}, nil
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout.
func (a *App) Run() error {
	server := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      a.engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", a.cfg.Server.Port),
			zap.String("env", a.cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("server stopped")
	return logger.Sync()
}

// Engine exposes the gin engine for tests.
func (a *App) Engine() *gin.Engine {
	return a.engine
}
