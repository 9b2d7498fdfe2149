package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/ada-checkout/docs"
	"github.com/sbilibin2017/ada-checkout/internal/facades"
	"github.com/sbilibin2017/ada-checkout/internal/handlers"
	"github.com/sbilibin2017/ada-checkout/internal/jwt"
	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/metrics"
	"github.com/sbilibin2017/ada-checkout/internal/middlewares"
	"github.com/sbilibin2017/ada-checkout/internal/repositories"
	"github.com/sbilibin2017/ada-checkout/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ada-checkout API
// @version 1.0.0
// @description USD to ADA checkout sessions: live rate, bill conversion, wallet connection and balance lookup
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		priceAPIURL, balanceAPIURL, walletProviderURL, httpClientTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, rateCacheExp,
		sessionSecret, sessionExp,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		priceAPIURL, balanceAPIURL, walletProviderURL, httpClientTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, rateCacheExp,
		sessionSecret, sessionExp,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, upstream, Redis, session and Kafka configuration.
// An empty REDIS_HOST selects the in-memory session store, an empty
// WALLET_PROVIDER_URL means no wallet is installed and empty KAFKA_BROKERS
// disables preview events.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	priceAPIURL, balanceAPIURL, walletProviderURL string, httpClientTimeoutSecond int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, rateCacheExpSecond int,
	sessionSecretKey string, sessionExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Upstream config
	priceAPIURL = getEnv("PRICE_API_URL", facades.DefaultPriceURL)
	balanceAPIURL = getEnv("BALANCE_API_URL", facades.DefaultBalanceURL)
	walletProviderURL = getEnv("WALLET_PROVIDER_URL", "")
	if httpClientTimeoutSecond, err = strconv.Atoi(getEnv("HTTP_CLIENT_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if rateCacheExpSecond, err = strconv.Atoi(getEnv("RATE_CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	// Session config
	sessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				kafkaBrokers = append(kafkaBrokers, b)
			}
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "payment-previews")

	return
}

// run initializes the logger, the upstream facades, the session store and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	priceAPIURL, balanceAPIURL, walletProviderURL string, httpClientTimeoutSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, rateCacheExpSecond int,
	sessionSecretKey string, sessionExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	httpClient := &http.Client{Timeout: time.Duration(httpClientTimeoutSecond) * time.Second}
	sessionExp := time.Duration(sessionExpSecond) * time.Second

	// Initialize facades
	priceFacade := facades.NewPriceHTTPFacade(httpClient, priceAPIURL)
	balanceFacade := facades.NewBalanceHTTPFacade(httpClient, balanceAPIURL)

	var wallet services.WalletProvider
	if walletProviderURL != "" {
		provider, err := facades.NewEIP1193Provider(ctx, walletProviderURL)
		if err != nil {
			return err
		}
		defer provider.Close()
		wallet = provider
		logger.Log.Infow("Wallet provider configured", "url", walletProviderURL)
	} else {
		logger.Log.Warn("No wallet provider configured, wallet connection is unavailable")
	}

	// Initialize repositories
	var (
		sessions services.SessionStore
		cache    services.PriceCache
	)
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		sessions = repositories.NewSessionRedisRepository(rdb, sessionExp)
		cache = repositories.NewExchangeRateCacheRepository(rdb, time.Duration(rateCacheExpSecond)*time.Second)
		logger.Log.Infow("Using Redis session store", "addr", rdb.Options().Addr)
	} else {
		sessions = repositories.NewSessionMemoryRepository(sessionExp)
		logger.Log.Info("Using in-memory session store")
	}

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing payment previews", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(sessionSecretKey, sessionExp)

	// Initialize services
	checkoutService := services.NewCheckoutService(sessions, priceFacade, cache, balanceFacade, wallet, kafkaWriter)
	defer checkoutService.Wait()

	getSession := middlewares.SessionFromContext

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.InstrumentHandler)
	r.Use(middlewares.SessionMiddleware(tokens))

	// Checkout page
	r.Get("/", handlers.NewPageHandler(checkoutService, tokens, getSession))
	r.Post("/bill", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitBill))
	r.Post("/payment/approve", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitApprove))
	r.Post("/payment/reject", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitReject))
	r.Post("/modal/close", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitCloseModal))
	r.Post("/wallet/balance", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitBalance))
	r.Post("/wallet/connect", handlers.NewFormActionHandler(checkoutService, getSession, handlers.SubmitConnectWallet))

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
			ExposedHeaders:   []string{middlewares.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Post("/sessions", handlers.NewCreateSessionHandler(checkoutService, tokens))
		r.Get("/convert", handlers.NewConvertHandler())

		r.Route("/session", func(r chi.Router) {
			r.Get("/", handlers.NewGetSessionHandler(checkoutService, getSession))
			r.Put("/bill", handlers.NewUpdateBillHandler(checkoutService, getSession))
			r.Put("/wallet-address", handlers.NewUpdateWalletAddressHandler(checkoutService, getSession))
			r.Post("/modal/open", handlers.NewOpenModalHandler(checkoutService, getSession))
			r.Post("/modal/close", handlers.NewCloseModalHandler(checkoutService, getSession))
			r.Post("/wallet/connect", handlers.NewConnectWalletHandler(checkoutService, getSession))
			r.Post("/balance", handlers.NewFetchBalanceHandler(checkoutService, getSession))
			r.Post("/payment/reject", handlers.NewRejectPaymentHandler(checkoutService, getSession))
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
