package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) SyncUser(ctx *fiber.Ctx) error {
	payload := new(req.SyncUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{Error: err.Error()})
	}

	response, err := handler.UserUsecase.SyncUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to sync user: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.JSON(response)
}

func (handler *UserHandler) SaveFcmToken(ctx *fiber.Ctx) error {
	payload := new(req.SaveFcmTokenRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{Error: err.Error()})
	}

	if err := handler.UserUsecase.SaveFcmToken(ctx.Context(), payload); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{Error: "User not found"})
		}
		handler.Logger.WithError(err).Errorf("Failed to save fcm token: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.JSON(fiber.Map{"success": true})
}
