package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yjsong/item-simulator/internal/catalog"
	"github.com/yjsong/item-simulator/internal/character"
	"github.com/yjsong/item-simulator/internal/database"
	"github.com/yjsong/item-simulator/internal/equipment"
	"github.com/yjsong/item-simulator/internal/handler"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/metrics"
	"github.com/yjsong/item-simulator/internal/shop"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	characterService character.Service
	equipmentService equipment.Service
	shopService      shop.Service
	catalogService   catalog.Service
}

// NewServer creates a new Server instance with all routes wired
func NewServer(port int, dbPool database.Pool, characterService character.Service, equipmentService equipment.Service, shopService shop.Service, catalogService catalog.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Character routes
		r.Route("/character", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCharacter(characterService))
			r.Get("/", handler.HandleListCharacters(characterService))
			r.Get("/{characterId}", handler.HandleGetCharacter(characterService))
			r.Patch("/{characterId}", handler.HandleUpdateCharacter(characterService))
			r.Delete("/{characterId}", handler.HandleDeleteCharacter(characterService))
		})

		// Equipment routes
		r.Post("/equip", handler.HandleEquip(equipmentService))
		r.Post("/unequip", handler.HandleUnequip(equipmentService))

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Patch("/purchase/{characterId}", handler.HandlePurchase(shopService))
			r.Delete("/sell/{characterId}", handler.HandleSell(shopService))
		})

		// Catalog routes
		r.Get("/items", handler.HandleListItems(catalogService))
		r.Route("/item", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItem(catalogService))
			r.Get("/{itemId}", handler.HandleGetItem(catalogService))
			r.Patch("/{itemId}", handler.HandleUpdateItem(catalogService))
			r.Delete("/{itemId}", handler.HandleDeleteItem(catalogService))
		})

		r.Get("/skins", handler.HandleListSkins(catalogService))
		r.Route("/skin", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSkin(catalogService))
			r.Get("/{skinId}", handler.HandleGetSkin(catalogService))
			r.Patch("/{skinId}", handler.HandleUpdateSkin(catalogService))
			r.Delete("/{skinId}", handler.HandleDeleteSkin(catalogService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		characterService: characterService,
		equipmentService: equipmentService,
		shopService:      shopService,
		catalogService:   catalogService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes poll constantly, skip logging them
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
