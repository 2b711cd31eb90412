package usecase

import (
	"context"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
)

type ChatUsecase interface {
	ListChatsByUser(ctx context.Context, firebaseUID string) ([]res.ChatSummary, error)
	CreateOrGetChat(ctx context.Context, request *req.CreateChatRequest) (res.CreateChatResponse, error)
}
