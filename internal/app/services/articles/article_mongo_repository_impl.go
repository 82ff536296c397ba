package articles

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type ArticleMongoRepository struct {
	Collection *mongo.Collection
}

func NewArticleMongoRepository(db *mongo.Client, dbName string) contracts.ArticleRepository {
	return &ArticleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionArticles),
	}
}

func (r *ArticleMongoRepository) FindAllArticles(ctx context.Context) ([]models.Article, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return articles, nil
}

func (r *ArticleMongoRepository) FindArticleByID(ctx context.Context, articleID string) (*models.Article, error) {
	var article models.Article
	err := r.Collection.FindOne(ctx, bson.M{"_id": articleID}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &article, nil
}
