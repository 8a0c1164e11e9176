package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talenthub/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("talenthub")

	jobs := []interface{}{
		model.Job{
			ID:           "job-backend-dev",
			Title:        "Backend Developer",
			Slug:         "backend-developer",
			Status:       model.JobStatusActive,
			Tags:         []string{"Go", "MongoDB", "REST"},
			Order:        1,
			Description:  "Design and maintain the hiring platform's services.",
			Requirements: []string{"3+ years backend experience", "Production Go or similar"},
			Salary:       "$120k - $150k",
			Location:     "Remote",
			JobType:      "Full-time",
			CreatedAt:    time.Now(),
		},
		model.Job{
			ID:          "job-qa-engineer",
			Title:       "QA Engineer",
			Slug:        "qa-engineer",
			Status:      model.JobStatusActive,
			Tags:        []string{"Testing", "Automation"},
			Order:       2,
			Description: "Own release quality across the candidate pipeline.",
			Salary:      "$90k - $110k",
			Location:    "Berlin",
			JobType:     "Full-time",
			CreatedAt:   time.Now(),
		},
	}
	if _, err := db.Collection("jobs").InsertMany(ctx, jobs); err != nil {
		log.Fatalf("Failed to insert jobs: %v", err)
	}

	assessment := model.Assessment{
		ID:          "assessment-job-backend-dev",
		JobID:       "job-backend-dev",
		Title:       "Assessment for Backend Developer",
		Description: "Screening questionnaire for backend applicants.",
		Sections: []model.Section{
			{
				ID:    "section-background",
				Title: "Background",
				Questions: []model.Question{
					{
						ID:       "q-background-role",
						Type:     model.QuestionTypeSingleChoice,
						Question: "Which role fits you best?",
						Required: true,
						Options:  []string{"dev", "ops", "other"},
					},
					{
						ID:         "q-background-years",
						Type:       model.QuestionTypeNumeric,
						Question:   "Years of professional experience",
						Required:   true,
						Validation: &model.Validation{Min: floatPtr(0), Max: floatPtr(50)},
					},
				},
			},
			{
				ID:    "section-depth",
				Title: "Technical Depth",
				Questions: []model.Question{
					{
						ID:         "q-depth-stack",
						Type:       model.QuestionTypeLongText,
						Question:   "Describe a backend system you built end to end.",
						Validation: &model.Validation{MinLength: intPtr(100), MaxLength: intPtr(2000)},
						ConditionalOn: &model.ConditionalOn{
							QuestionID: "q-background-role",
							Value:      "dev",
						},
					},
					{
						ID:       "q-depth-resume",
						Type:     model.QuestionTypeFileUpload,
						Question: "Attach your resume",
						Required: true,
					},
				},
			},
		},
		CreatedAt: time.Now(),
	}
	if _, err := db.Collection("assessments").InsertOne(ctx, assessment); err != nil {
		log.Fatalf("Failed to insert assessment: %v", err)
	}

	candidate := model.Candidate{
		ID:        "cand-jordan-diaz",
		Name:      "Jordan Diaz",
		Email:     "jordan.diaz@example.com",
		Stage:     model.StageApplied,
		JobID:     "job-backend-dev",
		Phone:     "+1 555 0100",
		Resume:    "https://example.com/resumes/jordan-diaz.pdf",
		Skills:    []string{"Go", "PostgreSQL", "Docker"},
		Timeline:  []model.TimelineEvent{},
		AppliedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := db.Collection("candidates").InsertOne(ctx, candidate); err != nil {
		log.Fatalf("Failed to insert candidate: %v", err)
	}

	fmt.Println("Seeded 2 jobs, 1 assessment, 1 candidate")
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
