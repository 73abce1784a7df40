package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"jobdesk_backend/internal/email"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"

	"github.com/google/uuid"
)

// Фейковые репозитории в памяти. Повторяют контракт настоящих,
// включая ошибки уникальности и ownership-scoped выборки.

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) FindOwned(id, employerID string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok || job.EmployerID != employerID {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) DeleteCascade(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListByEmployer(employerID string, page, pageSize int) ([]models.Job, int64, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) ListOpen(filter repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.Status == models.JobStatusOpen {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

type fakeApplicationRepo struct {
	apps   map[string]*models.Application
	events []models.TimelineEvent
	jobs   *fakeJobRepo
	rows   []repositories.AggregationRow

	// eventErr имитирует сбой записи события: транзакция откатывается целиком
	eventErr error
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps: make(map[string]*models.Application),
		jobs: jobs,
	}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now()
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) CreateWithEvent(app *models.Application, event *models.TimelineEvent) error {
	if err := r.Create(app); err != nil {
		return err
	}
	if r.eventErr != nil {
		delete(r.apps, app.ID)
		return r.eventErr
	}
	event.ApplicationID = app.ID
	return r.UpdateStatusWithEvent(app, event)
}

func (r *fakeApplicationRepo) Update(app *models.Application) error {
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	for _, app := range r.apps {
		if app.JobID == jobID && app.CandidateID == candidateID {
			return app, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindOwnedByCandidate(id, candidateID string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok || app.CandidateID != candidateID {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) FindOwnedByEmployer(id, employerID string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	job, ok := r.jobs.jobs[app.JobID]
	if !ok || job.EmployerID != employerID {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) ListByCandidate(candidateID string, page, pageSize int) ([]models.Application, int64, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.CandidateID == candidateID {
			out = append(out, *app)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) StatsByCandidate(candidateID string) (map[models.ApplicationStatus]int64, error) {
	stats := make(map[models.ApplicationStatus]int64)
	for _, app := range r.apps {
		if app.CandidateID == candidateID {
			stats[app.Status]++
		}
	}
	return stats, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatusWithEvent(app *models.Application, event *models.TimelineEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.CreatedAt = time.Now()
	r.apps[app.ID] = app
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeApplicationRepo) ListTimeline(applicationID string) ([]models.TimelineEvent, error) {
	var out []models.TimelineEvent
	for _, event := range r.events {
		if event.ApplicationID == applicationID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) AggregationRows(employerID string) ([]repositories.AggregationRow, error) {
	return r.rows, nil
}

func (r *fakeApplicationRepo) eventsFor(applicationID string) []models.TimelineEvent {
	events, _ := r.ListTimeline(applicationID)
	return events
}

type fakeUserRepo struct {
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	if user, ok := r.users[userID]; ok {
		user.IsVerified = true
		user.VerificationToken = ""
	}
	return nil
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	for _, user := range r.users {
		if user.VerificationToken != "" && user.VerificationToken == token {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, fmt.Errorf("refresh token not found")
	}
	return rt, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeUserRepo) CleanExpiredRefreshTokens() error {
	for key, token := range r.tokens {
		if token.ExpiresAt.Before(time.Now()) {
			delete(r.tokens, key)
		}
	}
	return nil
}

// fakeEmailProvider запоминает отправленные письма
type fakeEmailProvider struct {
	sent []string
}

func (p *fakeEmailProvider) Send(msg *email.Email) error { return nil }

func (p *fakeEmailProvider) SendVerification(to string, token string) error {
	p.sent = append(p.sent, to)
	return nil
}

type fakeProfileRepo struct {
	candidates map[string]*models.CandidateProfile
	employers  map[string]*models.EmployerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		candidates: make(map[string]*models.CandidateProfile),
		employers:  make(map[string]*models.EmployerProfile),
	}
}

func (r *fakeProfileRepo) CreateCandidateProfile(profile *models.CandidateProfile) error {
	r.candidates[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindCandidateProfile(userID string) (*models.CandidateProfile, error) {
	profile, ok := r.candidates[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) UpdateCandidateProfile(profile *models.CandidateProfile) error {
	r.candidates[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) CreateEmployerProfile(profile *models.EmployerProfile) error {
	r.employers[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindEmployerProfile(userID string) (*models.EmployerProfile, error) {
	profile, ok := r.employers[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	r.employers[profile.UserID] = profile
	return nil
}

type fakeSavedJobRepo struct {
	saved map[string]*models.SavedJob
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: make(map[string]*models.SavedJob)}
}

func (r *fakeSavedJobRepo) Save(savedJob *models.SavedJob) error {
	key := savedJob.CandidateID + "|" + savedJob.JobID
	if _, exists := r.saved[key]; exists {
		// ON CONFLICT DO NOTHING
		return nil
	}
	savedJob.CreatedAt = time.Now()
	r.saved[key] = savedJob
	return nil
}

func (r *fakeSavedJobRepo) Delete(candidateID, jobID string) error {
	delete(r.saved, candidateID+"|"+jobID)
	return nil
}

func (r *fakeSavedJobRepo) ListByCandidate(candidateID string) ([]models.SavedJob, error) {
	var out []models.SavedJob
	for _, saved := range r.saved {
		if saved.CandidateID == candidateID {
			out = append(out, *saved)
		}
	}
	return out, nil
}

// fakeStorage пишет файлы в память
type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (s *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/files/" + path + "?signed=1", nil
}
