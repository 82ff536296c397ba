package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
)

func attachClinicRoutes(router chi.Router, clinicController *controllers.ClinicController) {
	router.Get("/", clinicController.FindAll)
	router.Get("/{clinic_id}", clinicController.FindByID)
}
