package models

import (
	"gorm.io/datatypes"
)

// Job - вакансия. Владение эксклюзивно: вакансия принадлежит своему
// работодателю весь свой жизненный цикл, employer_id неизменяем.
type Job struct {
	BaseModel
	EmployerID  string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Status      JobStatus      `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
}
