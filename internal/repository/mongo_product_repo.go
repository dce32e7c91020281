package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UdayPS-4o/tradewithus/internal/models"
)

type ProductRepository interface {
	FindByProductID(ctx context.Context, productID string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Replace(ctx context.Context, productID string, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, productID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type mongoProductRepo struct {
	col *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database, collection string) ProductRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sellerId", Value: 1}}},
	})
	return &mongoProductRepo{col: col}
}

func (r *mongoProductRepo) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"productId": productID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepo) FindBySellerID(ctx context.Context, sellerID string) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{"sellerId": sellerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepo) Create(ctx context.Context, p *models.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Replace overwrites the whole document addressed by productID; the business
// key is forced from the path so it stays immutable.
func (r *mongoProductRepo) Replace(ctx context.Context, productID string, p *models.Product) (*models.Product, error) {
	existing, err := r.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	p.ProductID = productID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if _, err := r.col.ReplaceOne(ctx, bson.M{"productId": productID}, p); err != nil {
		return nil, err
	}
	return r.FindByProductID(ctx, productID)
}

func (r *mongoProductRepo) Delete(ctx context.Context, productID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoProductRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
