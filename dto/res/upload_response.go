package res

type UploadResponse struct {
	FileID uint `json:"file_id"`
}
