package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	CandidateHandler   *CandidateHandler
	SavedJobHandler    *SavedJobHandler
	UploadHandler      *UploadHandler
}
