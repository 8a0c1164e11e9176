package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talenthub/internal/model"
)

// SubmissionRepo stores validated response sets
type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByJobID(ctx context.Context, jobID string) ([]*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	submission.SubmittedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

func (r *submissionRepo) GetByJobID(ctx context.Context, jobID string) ([]*model.Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
