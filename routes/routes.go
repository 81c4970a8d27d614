package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/hackathon-registration/handlers"
	"github.com/Dosada05/hackathon-registration/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

const adminRealm = "hackathon-admin"

type Options struct {
	CORSAllowedOrigins []string
	AdminUser          string
	AdminPasswordHash  string
	Logger             *slog.Logger
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	registrationHandler *handlers.RegistrationHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	// CORS вешаем на корневой роутер, иначе preflight OPTIONS не дойдёт до middleware группы.
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	router.Get("/healthz", healthHandler.Health)

	// Публичные маршруты формы
	router.Get("/", registrationHandler.Form)
	router.Post("/register", registrationHandler.Register)

	// Административные маршруты
	router.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(adminRealm, opts.AdminUser, opts.AdminPasswordHash))

		r.Get("/admin", adminHandler.Dashboard)
		r.Post("/admin/archive", adminHandler.Archive)
		r.Get("/export-csv", adminHandler.ExportCSV)
	})
}

// requestLogger пишет одну запись slog на запрос.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.InfoContext(r.Context(), "http request",
					slog.String("request_id", chiMiddleware.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
