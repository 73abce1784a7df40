package services

import (
	"encoding/json"

	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// jsonStrings декодирует jsonb-массив в []string.
// Мусор в колонке превращается в пустой список, а не в ошибку.
func jsonStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// stringsJSON кодирует []string в jsonb-массив
func stringsJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func toJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Tags:        jsonStrings(job.Tags),
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func toApplicationResponse(app *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:              app.ID,
		JobID:           app.JobID,
		CandidateID:     app.CandidateID,
		Status:          app.Status,
		Step:            app.Step,
		ResumeURL:       app.ResumeURL,
		CoverLetter:     app.CoverLetter,
		NextInterviewAt: app.NextInterviewAt,
		CreatedAt:       app.CreatedAt,
		UpdatedAt:       app.UpdatedAt,
	}
	if app.Job != nil {
		job := toJobResponse(app.Job)
		resp.Job = &job
	}
	return resp
}

func toTimelineEventResponse(event *models.TimelineEvent) dto.TimelineEventResponse {
	return dto.TimelineEventResponse{
		ID:         event.ID,
		Type:       event.Type,
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		Message:    event.Message,
		ActorID:    event.ActorID,
		CreatedAt:  event.CreatedAt,
	}
}
