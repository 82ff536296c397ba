package articles

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type articleUsecase struct {
	ArticleRepository contracts.ArticleRepository
	RedisRepository   contracts.RedisRepository
	CacheTTL          time.Duration
	Log               *zap.Logger
}

func NewArticleUsecase(
	articleRepository contracts.ArticleRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ArticleUsecase {
	return &articleUsecase{
		ArticleRepository: articleRepository,
		RedisRepository:   redisRepository,
		CacheTTL:          time.Duration(internalConfig.App.CacheTTLInMinutes) * time.Minute,
		Log:               logger,
	}
}

func (u *articleUsecase) FindAll(ctx context.Context) ([]responses.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if cached, err := u.RedisRepository.Get(ctx, constvars.CacheKeyArticleList); err == nil && cached != "" {
		var response []responses.Article
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return response, nil
		}
	}

	articles, err := u.ArticleRepository.FindAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Article, 0, len(articles))
	for _, article := range articles {
		item := mapArticleResponse(&article)
		// Content is heavy; list responses carry the summary only.
		item.Content = ""
		response = append(response, item)
	}

	if err := u.RedisRepository.Set(ctx, constvars.CacheKeyArticleList, response, u.CacheTTL); err != nil {
		u.Log.Warn("articleUsecase.FindAll failed to cache article list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return response, nil
}

func (u *articleUsecase) FindByID(ctx context.Context, articleID string) (*responses.Article, error) {
	article, err := u.ArticleRepository.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, exceptions.ErrArticleNotFound(nil)
	}

	response := mapArticleResponse(article)
	return &response, nil
}

func mapArticleResponse(article *models.Article) responses.Article {
	return responses.Article{
		ID:          article.ID,
		Title:       article.Title,
		Summary:     article.Summary,
		Content:     article.Content,
		Source:      article.Source,
		ImageUrl:    article.ImageUrl,
		PublishedAt: article.PublishedAt,
	}
}
