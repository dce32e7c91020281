package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UdayPS-4o/tradewithus/internal/models"
)

type ProfileRepository interface {
	FindByProfileID(ctx context.Context, profileID string) (*models.Profile, error)
	FindAll(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Replace(ctx context.Context, profileID string, p *models.Profile) (*models.Profile, error)
	Delete(ctx context.Context, profileID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type mongoProfileRepo struct {
	col *mongo.Collection
}

func NewMongoProfileRepo(db *mongo.Database, collection string) ProfileRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "profileId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &mongoProfileRepo{col: col}
}

func (r *mongoProfileRepo) FindByProfileID(ctx context.Context, profileID string) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, bson.M{"profileId": profileID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProfileRepo) FindAll(ctx context.Context) ([]models.Profile, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *mongoProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	_, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Replace overwrites the whole document addressed by profileID. The business
// key inside the replacement is forced to the addressed one, keeping it
// immutable across updates.
func (r *mongoProfileRepo) Replace(ctx context.Context, profileID string, p *models.Profile) (*models.Profile, error) {
	p.ProfileID = profileID
	res, err := r.col.ReplaceOne(ctx, bson.M{"profileId": profileID}, p)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByProfileID(ctx, profileID)
}

func (r *mongoProfileRepo) Delete(ctx context.Context, profileID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"profileId": profileID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoProfileRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
