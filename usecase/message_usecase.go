package usecase

import (
	"context"

	"lms-chat-server/dto"
	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
)

type MessageUsecase interface {
	GetMessagesByChatID(ctx context.Context, chatID uint) ([]res.MessageRecord, error)
	MarkMessagesAsRead(ctx context.Context, chatID uint, firebaseUID string) error
	SendMessage(ctx context.Context, request *req.SendMessageRequest) (dto.MessagePayload, dto.PushNotification, error)
	RepairReadFlags(ctx context.Context) (int64, error)
}
