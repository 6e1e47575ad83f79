package types

import "github.com/go-playground/validator/v10"

// JobRecord is a job posting as consumed by the matcher. It is read-only
// from the matcher's point of view; storage and retrieval belong to the
// caller.
type JobRecord struct {
	Title          string   `json:"title"`
	Description    string   `json:"description" validate:"required,min=1"`
	RequiredSkills []string `json:"required_skills"`
}

// Validate validates the JobRecord using the validator.
func (j *JobRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
