package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/entity"
	"lms-chat-server/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewChatUsecase(chatRepository *repository.ChatRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ChatUsecase {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *ChatUsecaseImpl) ListChatsByUser(ctx context.Context, firebaseUID string) ([]res.ChatSummary, error) {
	userID, err := uc.UserRepository.FindIDByFirebaseUID(ctx, uc.DB, firebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := uc.ChatRepository.ListByUser(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list chats for user %d: %v", userID, err)
		return nil, err
	}

	summaries := make([]res.ChatSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, res.ChatSummary{
			ChatID:        row.ChatID,
			CreatedAt:     row.CreatedAt,
			RecipientName: row.RecipientName,
			RecipientUID:  row.RecipientUID,
			UnreadCount:   row.UnreadCount,
		})
	}
	return summaries, nil
}

// CreateOrGetChat resolves both participants, returns the existing chat
// for the pair when one exists, otherwise creates it. The lookup and the
// insert are separate round trips; concurrent calls for the same pair can
// race and both insert.
func (uc *ChatUsecaseImpl) CreateOrGetChat(ctx context.Context, request *req.CreateChatRequest) (res.CreateChatResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.CreateChatResponse{}, err
	}

	studentID, err := uc.UserRepository.FindIDByFirebaseUID(ctx, uc.DB, request.StudentFirebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res.CreateChatResponse{}, ErrUserNotFound
	}
	if err != nil {
		return res.CreateChatResponse{}, err
	}

	instructorID, err := uc.UserRepository.FindIDByFirebaseUID(ctx, uc.DB, request.InstructorFirebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res.CreateChatResponse{}, ErrUserNotFound
	}
	if err != nil {
		return res.CreateChatResponse{}, err
	}

	existing, err := uc.ChatRepository.FindByPair(ctx, uc.DB, studentID, instructorID)
	if err != nil {
		return res.CreateChatResponse{}, err
	}
	if existing != nil {
		return res.CreateChatResponse{ChatID: existing.ChatID, IsNew: false}, nil
	}

	chat := entity.Chat{StudentID: studentID, InstructorID: instructorID}
	if err := uc.ChatRepository.Save(ctx, uc.DB, &chat); err != nil {
		uc.Logger.WithError(err).Errorf("failed to create chat: %v", err)
		return res.CreateChatResponse{}, err
	}

	return res.CreateChatResponse{ChatID: chat.ChatID, IsNew: true}, nil
}
