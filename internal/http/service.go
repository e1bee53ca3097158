package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/inventory-hub/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/apierr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/metric"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/middleware"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/swagger"
	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	metrics  *metric.Metrics
	gatherer prometheus.Gatherer

	productSvc service.ProductService
	hub        *hub.Hub
	checks     map[string]HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	registry *prometheus.Registry,
	productSvc service.ProductService,
	h *hub.Hub,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(registry),
		gatherer:   registry,
		productSvc: productSvc,
		hub:        h,
		checks:     make(map[string]HealthChecker),
	}
}

// AddHealthCheck makes /healthz report name and fail while c is unhealthy.
// It must be called before the handler is built.
func (s *Service) AddHealthCheck(name string, c HealthChecker) {
	s.checks[name] = c
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	return s.RunWithServer(ctx, s.Handler())
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return r
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
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorContext(ctx, "http server stopped unexpectedly", slog.Any("error", err))
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.CorrelationID(),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.Cors(s.cfg.CorsOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	handler := s.newHandler()
	strictHandlers := gen.NewStrictHandlerWithOptions(
		handler,
		[]gen.StrictMiddlewareFunc{},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, apierr.RouteNotFoundErr)
	})

	gen.HandlerWithOptions(strictHandlers, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.handleResponseError,
		Middlewares:      []gen.MiddlewareFunc{limitBody},
	})

	r.Get("/ws", newWSHandler(s.logger, s.hub, s.cfg.CorsOrigins).Subscribe)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handleRequestError reports a body the generated handler could not decode.
func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	err = apperr.ValidationErr.WithMsg(requestErrorMsg(err)).WrapParent(err)
	s.handleResponseError(w, r, err)
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

	s.writeError(w, r, res)
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, res apierr.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func requestErrorMsg(err error) string {
	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &sizeErr):
		return "request body is too large"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return "invalid value for field: " + typeErr.Field
	default:
		return "invalid request body"
	}
}

const maxBodyBytes = 1 << 20 // 1 MB

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

var _ gen.StrictServerInterface = (*handler)(nil)

type handler struct {
	*productHandler
	*dashboardHandler
	*healthHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler:   newProductHandler(s.productSvc),
		dashboardHandler: newDashboardHandler(s.productSvc),
		healthHandler:    newHealthHandler(s.hub, s.checks),
	}
}
