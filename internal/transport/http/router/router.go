package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amankhan2005/DecoderHealth/internal/config"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/handlers"
	appmw "github.com/amankhan2005/DecoderHealth/internal/transport/http/middleware"
)

func New(
	career *handlers.CareerHandler,
	contact *handlers.ContactHandler,
	settings *handlers.SettingsHandler,
	health *handlers.HealthHandler,
	admin *appmw.AdminAuth,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(appmw.AccessLog)

	allowed := cfg.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", appmw.HeaderAdminUser, appmw.HeaderAdminPass},
		MaxAge:         300,
	}))

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/career/apply", career.Apply)

	r.Route("/contact", func(r chi.Router) {
		r.Post("/save", contact.Save)
		r.Get("/getall", contact.GetAll)
		r.Get("/{id}", contact.GetByID)
		r.Delete("/delete/{id}", contact.Delete)
	})

	r.Get("/settings", settings.Get)
	r.Group(func(r chi.Router) {
		r.Use(admin.Require)
		r.Put("/settings", settings.Update)
	})

	// Stored logos are public site assets.
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fs.ServeHTTP)

	return r
}
