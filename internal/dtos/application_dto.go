package dtos

type ApplyRequest struct {
	JobID       uint   `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
