package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	JobID           primitive.ObjectID `bson:"job_id"`
	UserID          primitive.ObjectID `bson:"user_id"`
	Resume          string             `bson:"resume"`
	Status          string             `bson:"status"`
	AppliedAt       time.Time          `bson:"applied_at"`
	StatusUpdatedAt time.Time          `bson:"status_updated_at"`
	StatusUpdatedBy primitive.ObjectID `bson:"status_updated_by,omitempty"`
}

func (ma *mongoApplication) toDomain() *domain.Application {
	app := &domain.Application{
		ID:              ma.ID.Hex(),
		JobID:           ma.JobID.Hex(),
		UserID:          ma.UserID.Hex(),
		Resume:          ma.Resume,
		Status:          domain.ApplicationStatus(ma.Status),
		AppliedAt:       ma.AppliedAt,
		StatusUpdatedAt: ma.StatusUpdatedAt,
	}
	if !ma.StatusUpdatedBy.IsZero() {
		app.StatusUpdatedBy = ma.StatusUpdatedBy.Hex()
	}
	return app
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	jobID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	userID, err := primitive.ObjectIDFromHex(app.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplication{
		JobID:           jobID,
		UserID:          userID,
		Resume:          app.Resume,
		Status:          string(app.Status),
		AppliedAt:       app.AppliedAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// The unique (job_id, user_id) index settles the concurrent
		// duplicate-apply race atomically.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*domain.Application{}, nil
	}
	return r.list(ctx, bson.M{"user_id": oid})
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return []*domain.Application{}, nil
	}
	return r.list(ctx, bson.M{"job_id": oid})
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, updatedBy string, updatedAt time.Time) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	byOID, err := primitive.ObjectIDFromHex(updatedBy)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":            string(status),
		"status_updated_at": updatedAt,
		"status_updated_by": byOID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ma mongoApplication
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return ma.toDomain(), nil
}

// EnsureIndexes creates the unique (job, user) index — a user may apply
// to a given job at most once — plus the per-user listing index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := make([]*domain.Application, 0)
	for cursor.Next(ctx) {
		var ma mongoApplication
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}
