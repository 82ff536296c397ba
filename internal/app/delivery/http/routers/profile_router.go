package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/middlewares"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.With(middlewares.Authenticate).Get("/", profileController.Find)
	router.With(middlewares.Authenticate).Patch("/", profileController.Update)
}
