package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/middlewares"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.Create)
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate).Patch("/{appointment_id}/cancel", appointmentController.Cancel)
}
