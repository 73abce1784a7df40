package models

import (
	"gorm.io/datatypes"
)

type CandidateProfile struct {
	BaseModel
	UserID    string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name      string         `json:"name"`
	Headline  string         `json:"headline"`
	City      string         `json:"city"`
	Skills    datatypes.JSON `gorm:"type:jsonb" json:"skills"` // список тегов навыков
	ResumeURL string         `json:"resume_url"`
}

type EmployerProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	City        string `json:"city"`
}
