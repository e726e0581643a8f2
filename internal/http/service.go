package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/tuanvumaihuynh/food-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/swagger"
	"github.com/tuanvumaihuynh/food-catalog/internal/service"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/db"
)

var tracer = otel.Tracer("internal/http")

// Registry is where the service registers its collectors and what /metrics
// serves.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	metrics  *metric.Metrics
	registry Registry

	foodSvc service.FoodService
	health  db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	registry Registry,
	foodSvc service.FoodService,
	health db.HealthChecker,
) (*Service, error) {
	m, err := metric.New(registry)
	if err != nil {
		return nil, fmt.Errorf("new http metrics: %w", err)
	}

	return &Service{
		cfg:      cfg,
		logger:   log.With(slog.String("service", "http")),
		metrics:  m,
		registry: registry,
		foodSvc:  foodSvc,
		health:   health,
	}, nil
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r, err := s.Router(ctx)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	return s.RunWithServer(ctx, r)
}

// Router builds the complete handler tree of the service.
func (s *Service) Router(ctx context.Context) (chi.Router, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(ctx, r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.AllowedOrigin),
		middleware.Logging(s.logger),
		middleware.RateLimit(rate.Limit(s.cfg.RateLimit), s.cfg.RateLimitBurst, s.metrics),
		middleware.Timeout(s.cfg.RequestTimeout),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := newFoodHandler(s.foodSvc)

	r.Get("/api/foods/preview", s.handle(h.ListPreviewFoods))
	r.Get("/api/foods/table", s.handle(h.ListTableFoods))
	r.Get("/api/foods/search", s.handle(h.SearchFoods))
	r.Get("/api/food/", s.handle(h.GetFood))
	r.Get("/api/food/{code}", s.handle(h.GetFood))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusNotFound, apierr.NotFoundErr)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusMethodNotAllowed, apierr.MethodNotAllowedErr)
	})
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
				err = apperr.RequestTimeoutErr.WrapParent(err)
			}
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) readyz(w http.ResponseWriter, r *http.Request) {
	ok, err := s.health.IsHealthy(r.Context())
	if err == nil && !ok {
		err = errors.New("database is not healthy")
	}
	if err != nil {
		s.handleResponseError(w, r, apperr.DBUnavailableErr.WrapParent(fmt.Errorf("check readiness: %w", err)))
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	s.writeJSON(w, r, res.StatusCode, res)
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}
