package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hireme/internal/config"
	"hireme/internal/events"
	"hireme/internal/middleware"
	"hireme/internal/modules/auth"
	"hireme/internal/modules/booking"
	"hireme/internal/modules/catalog"
	"hireme/internal/modules/chat"
	"hireme/internal/modules/profile"
	"hireme/internal/modules/upload"
	jwtsvc "hireme/internal/pkg/jwt"
	"hireme/internal/pkg/logger"
	"hireme/internal/pkg/response"
	"hireme/internal/realtime"
	"hireme/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

// App holds the HTTP router and the long-lived collaborators behind it.
type App struct {
	Router *gin.Engine
	Hub    *realtime.Hub

	log      *zap.Logger
	redis    *redis.Client
	redisBus *events.RedisBus
}

// New wires repositories, services and handlers onto a gin engine.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	store, err := upload.NewStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	a := &App{
		Hub: realtime.NewHub(log),
		log: log,
	}

	var publisher events.Publisher = events.NewLocalBus(a.Hub)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		a.redis = redis.NewClient(opts)
		if err := a.redis.Ping(ctx).Err(); err != nil {
			_ = a.redis.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		a.redisBus = events.NewRedisBus(a.redis, a.Hub, log)
		publisher = a.redisBus
		log.Info("realtime events via redis", zap.String("channel", events.DefaultChannel))
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	uploadService := upload.NewService(uploadRepo, store, apiPrefix+"/uploads")
	authService := auth.NewService(userRepo, j)
	profileService := profile.NewService(profileRepo, uploadService)
	catalogService := catalog.NewService(serviceRepo, profileRepo, uploadService)
	bookingService := booking.NewService(bookingRepo, serviceRepo, profileRepo, publisher)
	chatService := chat.NewService(messageRepo, bookingRepo, profileRepo, publisher)

	if logger.IsProduction(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/healthz", func(c *gin.Context) {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "online": a.Hub.OnlineCount()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if local, ok := store.(*upload.LocalStore); ok {
		r.Static(cfg.Storage.UploadsURLBase, local.BaseDir())
	}

	v1 := r.Group(apiPrefix)
	optional := v1.Group("")
	optional.Use(middleware.OptionalAuth(j))
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))

	limiter := middleware.NewIPRateLimiter(cfg.AuthRatePerMinute)
	authHandler := auth.NewHandler(authService)
	authHandler.RegisterPublicRoutes(v1, limiter.Middleware())
	authHandler.RegisterProtectedRoutes(protected)

	profile.NewHandler(profileService).RegisterRoutes(v1, optional, protected)
	catalog.NewHandler(catalogService).RegisterRoutes(v1, protected)
	booking.NewHandler(bookingService).RegisterRoutes(protected)
	chat.NewHandler(chatService).RegisterRoutes(protected)
	upload.NewHandler(uploadService).RegisterRoutes(protected)
	realtime.NewHandler(a.Hub, j, originChecker(cfg.CORSAllowedOrigins)).RegisterRoutes(v1)

	a.Router = r
	return a, nil
}

// Run blocks until ctx is done. With Redis configured it relays published
// events to this instance's websocket clients. ready, when non-nil, is
// closed once events can be received.
func (a *App) Run(ctx context.Context, ready chan<- struct{}) error {
	if a.redisBus == nil {
		if ready != nil {
			close(ready)
		}
		<-ctx.Done()
		return nil
	}
	err := a.redisBus.Run(ctx, ready)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() {
	a.Hub.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("redis close", zap.Error(err))
		}
	}
}

// originChecker mirrors the CORS allow-list for websocket upgrades. Requests
// without an Origin header come from non-browser clients and pass.
func originChecker(origins []string) func(*http.Request) bool {
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return nil
	}
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return allowed[u.Scheme+"://"+u.Host]
	}
}
