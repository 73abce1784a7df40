package models

import "time"

// TimelineEvent - неизменяемая запись аудита одной мутации статуса отклика.
// Строки только добавляются; обновление и удаление не предусмотрены.
type TimelineEvent struct {
	ID            string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID string            `gorm:"type:uuid;not null;index" json:"application_id"`
	Type          TimelineEventType `gorm:"type:varchar(32);not null" json:"type"`
	FromStatus    ApplicationStatus `gorm:"type:varchar(32)" json:"from_status"`
	ToStatus      ApplicationStatus `gorm:"type:varchar(32)" json:"to_status"`
	Message       string            `json:"message"`
	ActorID       string            `gorm:"type:uuid" json:"actor_id"`
	CreatedAt     time.Time         `gorm:"default:now()" json:"created_at"`
}
