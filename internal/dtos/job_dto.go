package dtos

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	Tags            string `json:"tags"`
}

// UpdateJobRequest uses pointers so an omitted field can be told apart from
// an explicitly empty one; only present fields are written.
type UpdateJobRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	JobType         *string `json:"job_type"`
	ExperienceLevel *string `json:"experience_level"`
	SalaryRange     *string `json:"salary_range"`
	Tags            *string `json:"tags"`
}
