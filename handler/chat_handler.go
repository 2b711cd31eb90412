package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{ChatUsecase: chatUsecase, Logger: logger}
}

func (handler *ChatHandler) GetChats(ctx *fiber.Ctx) error {
	firebaseUID := ctx.Query("firebase_uid")

	summaries, err := handler.ChatUsecase.ListChatsByUser(ctx.Context(), firebaseUID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{Error: "User not found"})
		}
		handler.Logger.WithError(err).Errorf("Failed to list chats: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return ctx.JSON(summaries)
}

func (handler *ChatHandler) CreateChat(ctx *fiber.Ctx) error {
	payload := new(req.CreateChatRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{Error: err.Error()})
	}

	response, err := handler.ChatUsecase.CreateOrGetChat(ctx.Context(), payload)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).SendString("Users not found")
		}
		handler.Logger.WithError(err).Errorf("Failed to create chat: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.JSON(response)
}
