package contracts

import (
	"context"

	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type ArticleUsecase interface {
	FindAll(ctx context.Context) ([]responses.Article, error)
	FindByID(ctx context.Context, articleID string) (*responses.Article, error)
}

type ArticleRepository interface {
	FindAllArticles(ctx context.Context) ([]models.Article, error)
	FindArticleByID(ctx context.Context, articleID string) (*models.Article, error)
}
