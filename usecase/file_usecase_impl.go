package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lms-chat-server/entity"
	"lms-chat-server/repository"
)

type FileUsecaseImpl struct {
	*repository.FileRepository
	*gorm.DB
	*logrus.Logger
}

func NewFileUsecase(fileRepository *repository.FileRepository, DB *gorm.DB, logger *logrus.Logger) FileUsecase {
	return &FileUsecaseImpl{FileRepository: fileRepository, DB: DB, Logger: logger}
}

func (uc *FileUsecaseImpl) SaveFile(ctx context.Context, filename, mimeType string, data []byte) (uint, error) {
	file := entity.File{
		Filename: filename,
		MimeType: mimeType,
		Data:     data,
	}
	if err := uc.FileRepository.Save(ctx, uc.DB, &file); err != nil {
		uc.Logger.WithError(err).Errorf("failed to store file %q: %v", filename, err)
		return 0, err
	}
	return file.FileID, nil
}

func (uc *FileUsecaseImpl) GetFile(ctx context.Context, fileID uint) (entity.File, error) {
	var file entity.File
	if err := uc.FileRepository.FindById(ctx, uc.DB, &file, fileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.File{}, ErrFileNotFound
		}
		return entity.File{}, err
	}
	return file, nil
}
