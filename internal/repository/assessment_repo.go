package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talenthub/internal/model"
)

// AssessmentRepo handles MongoDB operations for assessment documents.
// Assessments are persisted whole; there are no partial updates.
type AssessmentRepo interface {
	GetByJobID(ctx context.Context, jobID string) (*model.Assessment, error)
	Save(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

// GetByJobID returns the job's assessment, or nil if none has been saved yet.
func (r *assessmentRepo) GetByJobID(ctx context.Context, jobID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"jobId": jobID}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// Save writes the whole document, inserting on first save.
func (r *assessmentRepo) Save(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": assessment.ID},
		assessment,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
