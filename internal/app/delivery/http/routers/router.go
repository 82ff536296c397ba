package routers

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/middlewares"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	triageController *controllers.TriageController,
	reminderController *controllers.ReminderController,
	appointmentController *controllers.AppointmentController,
	clinicController *controllers.ClinicController,
	articleController *controllers.ArticleController,
	profileController *controllers.ProfileController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Client-Info", "Apikey", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/symptoms", func(r chi.Router) {
				attachTriageCatalogRoutes(r, triageController)
			})

			r.Route("/symptom-checks", func(r chi.Router) {
				attachTriageCheckRoutes(r, triageController)
			})

			r.Route("/reminders", func(r chi.Router) {
				attachReminderRoutes(r, reminderController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, clinicController)
			})

			r.Route("/articles", func(r chi.Router) {
				attachArticleRoutes(r, articleController)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, profileController)
			})
		})
	})
}
