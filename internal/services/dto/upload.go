package dto

// UploadResponse - ответ с информацией о загруженном резюме
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
