package repository

import (
	"context"

	"gorm.io/gorm"

	"lms-chat-server/entity"
)

type FileRepository struct {
	Repository[entity.File]
}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// FindMeta fetches filename and MIME type without loading the payload.
func (repository FileRepository) FindMeta(ctx context.Context, db *gorm.DB, fileID uint) (entity.File, error) {
	var file entity.File
	err := db.WithContext(ctx).
		Select("file_id", "filename", "mime_type").
		Take(&file, fileID).Error
	return file, err
}
