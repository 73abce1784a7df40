package database

import (
	"jobdesk_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с Postgres.
// TranslateError нужен, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey, а не как сырой pq-код.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// AutoMigrate накатывает схему всех моделей приложения
func AutoMigrate(db *gorm.DB) error {
	// Для uuid_generate_v4 в default колонок
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CandidateProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.TimelineEvent{},
		&models.SavedJob{},
	)
}
