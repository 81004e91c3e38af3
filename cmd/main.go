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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/recipe-search/docs"
	"github.com/sbilibin2017/recipe-search/internal/facades"
	"github.com/sbilibin2017/recipe-search/internal/handlers"
	"github.com/sbilibin2017/recipe-search/internal/jwt"
	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/middlewares"
	"github.com/sbilibin2017/recipe-search/internal/migrations"
	"github.com/sbilibin2017/recipe-search/internal/repositories"
	"github.com/sbilibin2017/recipe-search/internal/services"
	"github.com/sbilibin2017/recipe-search/internal/templates"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// imageURLPrefix is the public path of locally stored uploads.
const imageURLPrefix = "/static/imgs/"

// config holds everything read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string
	StaticDir string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	JWTSecretKey string
	JWTExpSecond int

	KafkaBrokers            []string
	KafkaBookmarkTopic      string
	BookmarkAllowDuplicates bool

	ImageDir    string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
	S3PublicURL string

	VisionAPIURL      string
	VisionAPIKey      string
	VisionMaxResults  int
	TranslateAPIURL   string
	TranslateAPIKey   string
	TranslateTarget   string
	HTTPClientTimeout int
}

// @title recipe-search
// @version 1.0.0
// @description Server-rendered recipe search by ingredients, title and photo
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, storage and API configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.StaticDir = getEnv("STATIC_DIR", "static")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}
	if cfg.RedisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaBookmarkTopic = getEnv("KAFKA_BOOKMARK_TOPIC", "bookmark-events")
	if cfg.BookmarkAllowDuplicates, err = strconv.ParseBool(getEnv("BOOKMARK_ALLOW_DUPLICATES", "true")); err != nil {
		return nil, err
	}

	// Image storage config
	cfg.ImageDir = getEnv("IMAGE_DIR", "static/imgs")
	cfg.S3Bucket = getEnv("S3_BUCKET", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3Prefix = getEnv("S3_PREFIX", "imgs")
	cfg.S3PublicURL = getEnv("S3_PUBLIC_URL", "")

	// Label detection and translation config
	cfg.VisionAPIURL = getEnv("VISION_API_URL", "https://vision.googleapis.com")
	cfg.VisionAPIKey = getEnv("VISION_API_KEY", "")
	if cfg.VisionMaxResults, err = strconv.Atoi(getEnv("VISION_MAX_RESULTS", "10")); err != nil {
		return nil, err
	}
	cfg.TranslateAPIURL = getEnv("TRANSLATE_API_URL", "https://translation.googleapis.com")
	cfg.TranslateAPIKey = getEnv("TRANSLATE_API_KEY", "")
	cfg.TranslateTarget = getEnv("TRANSLATE_TARGET", "ja")
	if cfg.HTTPClientTimeout, err = strconv.Atoi(getEnv("HTTP_CLIENT_TIMEOUT_SECOND", "10")); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// app groups the collaborators the router is built from.
type app struct {
	jwt        *jwt.JWT
	auth       *services.AuthService
	search     *services.SearchService
	bookmarks  *services.BookmarkService
	images     *services.ImageService
	renderer   *templates.Renderer
	db         *sqlx.DB
	staticDir  string
	swaggerURL string
}

// newRouter registers public and session-protected routes.
func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/login", handlers.NewLoginPageHandler(a.renderer))
	r.Post("/login", handlers.NewLoginHandler(a.auth, a.jwt))
	r.Get("/register", handlers.NewRegisterPageHandler(a.renderer))
	r.Post("/register", handlers.NewRegisterHandler(a.auth))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(a.staticDir))))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(a.swaggerURL)))

	ingredientSearch := handlers.NewIngredientSearchHandler(a.search, a.jwt, a.renderer)
	resultPage := handlers.NewResultPageHandler(a.search, a.bookmarks, a.jwt, a.renderer)
	titleForm := handlers.NewTitleFormHandler(a.renderer)
	titleSubmit := handlers.NewTitleFormSubmitHandler(a.renderer)
	imageSearch := handlers.NewImageSearchHandler(a.images, a.renderer)
	bookmarkAdd := handlers.NewBookmarkAddHandler(a.bookmarks, a.jwt)
	bookmarkRelease := handlers.NewBookmarkReleaseHandler(a.bookmarks, a.jwt)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.jwt))

		r.Get("/logout", handlers.NewLogoutHandler(a.auth, a.jwt, a.jwt))
		r.Get("/", handlers.NewIndexHandler(a.renderer))
		r.Get("/bookmarks", handlers.NewBookmarksHandler(a.bookmarks, a.jwt, a.renderer))

		r.Get("/food-recipe", handlers.NewIngredientFormHandler(a.renderer))
		r.Post("/food-recipe", ingredientSearch)
		r.Get("/{page}/recipe-search", resultPage)
		r.Post("/{page}/recipe-search", resultPage)

		r.Get("/recipe-food", titleForm)
		r.Post("/recipe-food", titleSubmit)
		r.Get("/food-search", handlers.NewTitleSearchHandler(a.search, a.renderer))
		r.Get("/foodlist", handlers.NewRecipeDetailHandler(a.search, a.renderer))

		r.Get("/image-upload", handlers.NewImageUploadHandler(a.renderer))
		r.Post("/image-upload", imageSearch)
		r.Get("/image-search", handlers.NewImageResultHandler(a.renderer))
		r.Post("/image-search", imageSearch)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(a.db))

			r.Get("/{page}/{id}/bookmark", bookmarkAdd)
			r.Post("/{page}/{id}/bookmark", bookmarkAdd)
			r.Get("/{page}/{id}/bookmark-release", bookmarkRelease)
			r.Post("/{page}/{id}/bookmark-release", bookmarkRelease)
			r.Get("/{id}/bookmark-release", bookmarkRelease)
			r.Post("/{id}/bookmark-release", bookmarkRelease)
		})
	})

	return r
}

// run initializes the logger, database, Redis, Kafka, image storage and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Apply schema
	migrator, err := migrations.New(db.DB)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for bookmark events, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaBookmarkTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaBookmarkTopic)
	}

	// Image storage: S3 when a bucket is configured, local directory otherwise
	var imageStore services.ImageStore
	if cfg.S3Bucket != "" {
		s3Client, err := repositories.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
		if err != nil {
			return err
		}
		imageStore = repositories.NewS3ImageRepository(s3Client, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicURL)
	} else {
		imageStore = repositories.NewLocalImageRepository(cfg.ImageDir, imageURLPrefix)
	}

	// External APIs
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPClientTimeout) * time.Second}
	labelDetector := facades.NewLabelDetectionHTTPFacade(httpClient, cfg.VisionAPIURL, cfg.VisionAPIKey, cfg.VisionMaxResults)
	translator := facades.NewTranslationHTTPFacade(httpClient, cfg.TranslateAPIURL, cfg.TranslateAPIKey)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	bookmarkWriteRepo := repositories.NewBookmarkWriteRepository(db, middlewares.GetTxFromContext)
	bookmarkReadRepo := repositories.NewBookmarkReadRepository(db)
	searchSessionRepo := repositories.NewSearchSessionRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Initialize services
	renderer, err := templates.New()
	if err != nil {
		return err
	}

	a := &app{
		jwt:        tokens,
		auth:       services.NewAuthService(userReadRepo, userWriteRepo, tokens, searchSessionRepo),
		search:     services.NewSearchService(recipeReadRepo, searchSessionRepo),
		bookmarks:  services.NewBookmarkService(bookmarkWriteRepo, bookmarkReadRepo, kafkaWriter, cfg.BookmarkAllowDuplicates),
		images:     services.NewImageService(imageStore, labelDetector, translator, cfg.TranslateTarget),
		renderer:   renderer,
		db:         db,
		staticDir:  cfg.StaticDir,
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(a),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
