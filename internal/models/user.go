package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	VerificationToken string `json:"-"`

	// Relations
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID" json:"candidate_profile,omitempty"`
	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
