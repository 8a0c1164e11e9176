package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talenthub/internal/model"
)

// JobRepo handles MongoDB operations for job postings
type JobRepo interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context) ([]*model.Job, error)
}

type jobRepo struct {
	collection *mongo.Collection
}

// NewJobRepo creates a new job repository
func NewJobRepo(db *mongo.Database) JobRepo {
	return &jobRepo{
		collection: db.Collection("jobs"),
	}
}

func (r *jobRepo) Create(ctx context.Context, job *model.Job) error {
	_, err := r.collection.InsertOne(ctx, job)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns all postings in board order.
func (r *jobRepo) List(ctx context.Context) ([]*model.Job, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
