package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

func (handler *MessageHandler) GetMessages(ctx *fiber.Ctx) error {
	chatID, err := ctx.ParamsInt("chatId")
	if err != nil || chatID < 1 {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{Error: "chatId is required"})
	}

	records, err := handler.MessageUsecase.GetMessagesByChatID(ctx.Context(), uint(chatID))
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to get messages for chat %d: %v", chatID, err)
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.JSON(records)
}

func (handler *MessageHandler) MarkRead(ctx *fiber.Ctx) error {
	payload := new(req.MarkReadRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{Error: err.Error()})
	}

	err := handler.MessageUsecase.MarkMessagesAsRead(ctx.Context(), payload.ChatID, payload.UserFirebaseUID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ctx.Status(fiber.StatusBadRequest).SendString("User invalid")
		}
		handler.Logger.WithError(err).Errorf("Failed to mark messages read: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.SendStatus(fiber.StatusOK)
}
