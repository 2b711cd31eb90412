package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"lms-chat-server/dto/res"
	"lms-chat-server/usecase"
)

// maxUploadSize caps attachment ingestion at 50 MiB, matching the fiber
// body limit in config.
const maxUploadSize = 50 * 1024 * 1024

type FileHandler struct {
	usecase.FileUsecase
	*logrus.Logger
}

func NewFileHandler(fileUsecase usecase.FileUsecase, logger *logrus.Logger) *FileHandler {
	return &FileHandler{FileUsecase: fileUsecase, Logger: logger}
}

func (handler *FileHandler) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString("No file uploaded")
	}
	if fileHeader.Size > maxUploadSize {
		return ctx.Status(fiber.StatusBadRequest).SendString("File too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to open upload: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString("File upload failed")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to read upload: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString("File upload failed")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	fileID, err := handler.FileUsecase.SaveFile(ctx.Context(), fileHeader.Filename, mimeType, data)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("File upload failed")
	}

	return ctx.JSON(res.UploadResponse{FileID: fileID})
}

func (handler *FileHandler) Download(ctx *fiber.Ctx) error {
	fileID, err := ctx.ParamsInt("id")
	if err != nil || fileID < 1 {
		return ctx.Status(fiber.StatusNotFound).SendString("File not found")
	}

	file, err := handler.FileUsecase.GetFile(ctx.Context(), uint(fileID))
	if err != nil {
		if errors.Is(err, usecase.ErrFileNotFound) {
			return ctx.Status(fiber.StatusNotFound).SendString("File not found")
		}
		handler.Logger.WithError(err).Errorf("Failed to serve file %d: %v", fileID, err)
		return ctx.Status(fiber.StatusInternalServerError).SendString("Error serving file")
	}

	ctx.Set(fiber.HeaderContentType, file.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", file.Filename))
	return ctx.Send(file.Data)
}
