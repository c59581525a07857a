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

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Salary      string             `bson:"salary"`
	Experience  string             `bson:"experience"`
	PostedBy    primitive.ObjectID `bson:"posted_by"`
	Company     string             `bson:"company"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (mj *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:          mj.ID.Hex(),
		Title:       mj.Title,
		Description: mj.Description,
		Location:    mj.Location,
		Salary:      mj.Salary,
		Experience:  mj.Experience,
		PostedBy:    mj.PostedBy.Hex(),
		Company:     mj.Company,
		CreatedAt:   mj.CreatedAt,
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	postedBy, err := primitive.ObjectIDFromHex(job.PostedBy)
	if err != nil {
		return nil, fmt.Errorf("insert job: bad employer id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Salary:      job.Salary,
		Experience:  job.Experience,
		PostedBy:    postedBy,
		Company:     job.Company,
		CreatedAt:   job.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return r.list(ctx, bson.M{})
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return []*domain.Job{}, nil
	}
	return r.list(ctx, bson.M{"posted_by": oid})
}

// EnsureIndexes creates the employer lookup index used by the dashboard.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "posted_by", Value: 1}},
	})
	return err
}

func (r *JobRepository) list(ctx context.Context, filter bson.M) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cursor.Next(ctx) {
		var mj mongoJob
		if err := cursor.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
