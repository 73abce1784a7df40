package dto

// UpdateCandidateProfileRequest - частичное обновление профиля кандидата
type UpdateCandidateProfileRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Headline *string  `json:"headline,omitempty" validate:"omitempty,max=200"`
	City     *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Skills   []string `json:"skills,omitempty" validate:"omitempty,max=50,dive,min=1,max=50"`
}

// UpdateEmployerProfileRequest - частичное обновление профиля работодателя
type UpdateEmployerProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,min=1,max=150"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

// CandidateProfileResponse - публичное представление профиля кандидата
type CandidateProfileResponse struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Headline  string   `json:"headline,omitempty"`
	City      string   `json:"city,omitempty"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resume_url,omitempty"`
}

// EmployerProfileResponse - публичное представление профиля работодателя
type EmployerProfileResponse struct {
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	City        string `json:"city,omitempty"`
}
