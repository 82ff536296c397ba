package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
)

func attachTriageCatalogRoutes(router chi.Router, triageController *controllers.TriageController) {
	router.Get("/", triageController.Catalog)
}

func attachTriageCheckRoutes(router chi.Router, triageController *controllers.TriageController) {
	router.Post("/", triageController.CheckSymptoms)
}
