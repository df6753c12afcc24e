package dtos

// SeekerProfileRequest arrives as a multipart form because it may carry a
// resume file alongside the text fields.
type SeekerProfileRequest struct {
	Headline   string `form:"headline"`
	Skills     string `form:"skills"`
	Experience string `form:"experience"`
	Education  string `form:"education"`
	Location   string `form:"location"`
}

type EmployerProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
