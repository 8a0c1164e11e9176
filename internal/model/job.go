package model

import "time"

// JobStatus marks whether a posting accepts applications
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

// Job is a posting that candidates apply to. Assessments reference jobs by id.
type Job struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Slug         string    `json:"slug" bson:"slug"`
	Status       JobStatus `json:"status" bson:"status"`
	Tags         []string  `json:"tags" bson:"tags"`
	Order        int       `json:"order" bson:"order"`
	Description  string    `json:"description" bson:"description"`
	Requirements []string  `json:"requirements" bson:"requirements"`
	Salary       string    `json:"salary" bson:"salary"`
	Location     string    `json:"location" bson:"location"`
	JobType      string    `json:"jobType" bson:"jobType"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
