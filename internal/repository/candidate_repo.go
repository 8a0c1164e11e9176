package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talenthub/internal/model"
)

// CandidateRepo handles MongoDB operations for candidates
type CandidateRepo interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	GetByJobID(ctx context.Context, jobID string) ([]*model.Candidate, error)
	Update(ctx context.Context, candidate *model.Candidate) error
}

type candidateRepo struct {
	collection *mongo.Collection
}

// NewCandidateRepo creates a new candidate repository
func NewCandidateRepo(db *mongo.Database) CandidateRepo {
	return &candidateRepo{
		collection: db.Collection("candidates"),
	}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	if candidate.AppliedAt.IsZero() {
		candidate.AppliedAt = time.Now()
	}
	candidate.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, candidate)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByJobID(ctx context.Context, jobID string) ([]*model.Candidate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []*model.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Update replaces the whole candidate document.
func (r *candidateRepo) Update(ctx context.Context, candidate *model.Candidate) error {
	candidate.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": candidate.ID}, candidate)
	return err
}
