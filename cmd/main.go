package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout"
	checkoutInfra "github.com/mateusmacedo/go-ddd-events/internal/checkout/infrastructure"
	"github.com/mateusmacedo/go-ddd-events/internal/config"
	"github.com/mateusmacedo/go-ddd-events/internal/customer"
	customerDomain "github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	customerInfra "github.com/mateusmacedo/go-ddd-events/internal/customer/infrastructure"
	"github.com/mateusmacedo/go-ddd-events/internal/product"
	productDomain "github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	productInfra "github.com/mateusmacedo/go-ddd-events/internal/product/infrastructure"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
	gormAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/gorm/adapter"
	"github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/httpserver"
	watermillAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	configPath := flag.String("config", os.Getenv("DDD_CONFIG"), "caminho do arquivo de configuração")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	appLogger, err := zapAdapter.NewZapAppLogger(cfg.Logger.Level)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := gormAdapter.Open(cfg.Database.Driver, cfg.Database.DSN, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao conectar no banco de dados", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	customerRepo, err := customerInfra.NewGormCustomerRepository(db, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar o repositório de clientes", map[string]interface{}{"error": err})
		os.Exit(1)
	}
	productRepo, err := productInfra.NewGormProductRepository(db, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar o repositório de produtos", map[string]interface{}{"error": err})
		os.Exit(1)
	}
	orderRepo, err := checkoutInfra.NewGormOrderRepository(db, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar o repositório de pedidos", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	idGenerator := pkgInfra.NewUUIDGenerator()
	customerDispatcher := pkgInfra.NewEventDispatcher[customerDomain.CustomerEvent, customerDomain.CustomerEventData](appLogger)
	productDispatcher := pkgInfra.NewEventDispatcher[productDomain.ProductEvent, productDomain.ProductEventData](appLogger)

	if cfg.Events.Forward {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillAdapter.NewWatermillLoggerAdapter(appLogger))
		defer pubSub.Close()

		customerForwarder := watermillAdapter.NewForwardingEventHandler[customerDomain.CustomerEvent, customerDomain.CustomerEventData](pubSub, appLogger)
		productForwarder := watermillAdapter.NewForwardingEventHandler[productDomain.ProductEvent, productDomain.ProductEventData](pubSub, appLogger)
		customerDispatcher.Register(customerDomain.CustomerCreatedEventName, customerForwarder)
		customerDispatcher.Register(customerDomain.ChangeAddressEventName, customerForwarder)
		productDispatcher.Register(productDomain.ProductCreatedEventName, productForwarder)

		for _, topic := range []string{
			customerDomain.CustomerCreatedEventName,
			customerDomain.ChangeAddressEventName,
			productDomain.ProductCreatedEventName,
		} {
			if err := watermillAdapter.LogForwardedEvents(ctx, pubSub, topic, appLogger); err != nil {
				os.Exit(1)
			}
		}
	}

	customerSlice := customer.NewCustomerSlice(customerDispatcher, customerRepo, idGenerator, appLogger)
	productSlice := product.NewProductSlice(productDispatcher, productRepo, productInfra.NewLogNotifier(appLogger), idGenerator, appLogger)
	checkoutSlice := checkout.NewCheckoutSlice(orderRepo, idGenerator, appLogger)

	router := chi.NewRouter()
	router.Use(httpserver.RequestID)
	router.Use(httpserver.RequestLogger(appLogger))
	router.Use(middleware.Recoverer)

	customerSlice.RegisterRoutes(router)
	productSlice.RegisterRoutes(router)
	checkoutSlice.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info(ctx, "Server starting on:"+cfg.Server.Address, nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error(ctx, "Erro ao iniciar o servidor", map[string]interface{}{
				"error": err,
			})
			cancel()
		}
	}()

	<-ctx.Done()
	appLogger.Info(context.Background(), "Encerrando servidor...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "Erro ao encerrar servidor", map[string]interface{}{
			"error": err,
		})
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
}
