package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
)

func attachArticleRoutes(router chi.Router, articleController *controllers.ArticleController) {
	router.Get("/", articleController.FindAll)
	router.Get("/{article_id}", articleController.FindByID)
}
