package usecase

import (
	"context"

	"lms-chat-server/entity"
)

type FileUsecase interface {
	SaveFile(ctx context.Context, filename, mimeType string, data []byte) (uint, error)
	GetFile(ctx context.Context, fileID uint) (entity.File, error)
}
