package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError. Сущность вне зоны владения
// возвращает ровно такой же ответ, как несуществующая.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Applications & Pipeline ---

// ErrAlreadyApplied - у кандидата уже есть активный отклик на эту вакансию.
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrNoActiveApplication - нечего отзывать: активного отклика нет.
var ErrNoActiveApplication = New(
	CodeNotFound,
	"application",
	"No active application found",
	http.StatusNotFound,
)

// ErrInvalidApplicationStatus - статус вне канонического словаря пайплайна.
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"pipeline",
	"Unknown application status",
	http.StatusBadRequest,
)

// ErrInterviewTimeRequired - переход в interview_scheduled без времени интервью.
var ErrInterviewTimeRequired = New(
	CodeValidationFailed,
	"pipeline",
	"next_interview_at is required when scheduling an interview",
	http.StatusBadRequest,
)

// --- Jobs ---

// ErrJobNotOpen - вакансия не принимает отклики в текущем статусе.
var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open for applications",
	http.StatusConflict,
)

var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Unknown job status",
	http.StatusBadRequest,
)

// --- Uploads & Files ---

// ErrFileTooLarge - файл превышает максимальный размер для одного запроса.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME-тип файла не разрешен.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
