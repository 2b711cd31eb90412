package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lms-chat-server/dto"
	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/entity"
	"lms-chat-server/repository"
)

type messageUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    *repository.UserRepository
	messageRepo *repository.MessageRepository
	fileRepo    *repository.FileRepository
	baseURL     string
}

func NewMessageUsecase(db *gorm.DB, log *logrus.Logger, userRepo *repository.UserRepository, messageRepo *repository.MessageRepository, fileRepo *repository.FileRepository, baseURL string) MessageUsecase {
	return &messageUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		fileRepo:    fileRepo,
		baseURL:     baseURL,
	}
}

func (uc *messageUsecase) fileURL(fileID uint) string {
	return fmt.Sprintf("%s/api/files/%d", uc.baseURL, fileID)
}

func (uc *messageUsecase) GetMessagesByChatID(ctx context.Context, chatID uint) ([]res.MessageRecord, error) {
	rows, err := uc.messageRepo.FindByChatID(ctx, uc.db, chatID)
	if err != nil {
		return nil, err
	}

	records := make([]res.MessageRecord, 0, len(rows))
	for _, row := range rows {
		record := res.MessageRecord{
			MessageID:        row.MessageID,
			Text:             row.Text,
			CreatedAt:        row.CreatedAt,
			IsRead:           row.IsRead,
			SenderUID:        row.SenderUID,
			AttachmentFileID: row.AttachmentFileID,
		}
		if row.AttachmentFileID != nil {
			if row.AttachmentName != nil {
				record.AttachmentName = *row.AttachmentName
			}
			if row.AttachmentType != nil {
				record.AttachmentType = *row.AttachmentType
			}
			record.AttachmentURL = uc.fileURL(*row.AttachmentFileID)
		}
		records = append(records, record)
	}
	return records, nil
}

func (uc *messageUsecase) MarkMessagesAsRead(ctx context.Context, chatID uint, firebaseUID string) error {
	userID, err := uc.userRepo.FindIDByFirebaseUID(ctx, uc.db, firebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return uc.messageRepo.MarkRead(ctx, uc.db, chatID, userID)
}

// SendMessage is the relay's core transition: resolve both participants,
// persist the message unread, enrich with attachment metadata, and return
// the broadcast payload plus the composed push for the receiver's device.
// Unresolvable participants yield ErrUnknownParticipant and nothing is
// persisted; the caller drops the message without an error frame.
func (uc *messageUsecase) SendMessage(ctx context.Context, request *req.SendMessageRequest) (dto.MessagePayload, dto.PushNotification, error) {
	senderID, err := uc.userRepo.FindIDByFirebaseUID(ctx, uc.db, request.SenderFirebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.MessagePayload{}, dto.PushNotification{}, ErrUnknownParticipant
	}
	if err != nil {
		return dto.MessagePayload{}, dto.PushNotification{}, err
	}

	receiverID, err := uc.userRepo.FindIDByFirebaseUID(ctx, uc.db, request.ReceiverFirebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.MessagePayload{}, dto.PushNotification{}, ErrUnknownParticipant
	}
	if err != nil {
		return dto.MessagePayload{}, dto.PushNotification{}, err
	}

	message := entity.Message{
		ChatID:           request.ChatID,
		SenderID:         senderID,
		ReceiverID:       receiverID,
		Text:             request.Text,
		IsRead:           false,
		AttachmentFileID: request.AttachmentFileID,
	}
	if err := uc.messageRepo.Save(ctx, uc.db, &message); err != nil {
		return dto.MessagePayload{}, dto.PushNotification{}, err
	}

	payload := dto.MessagePayload{
		MessageID:        message.MessageID,
		Text:             message.Text,
		CreatedAt:        message.CreatedAt,
		IsRead:           message.IsRead,
		AttachmentFileID: message.AttachmentFileID,
		ChatID:           request.ChatID,
		SenderUID:        request.SenderFirebaseUID,
		ReceiverUID:      request.ReceiverFirebaseUID,
		ClientSideID:     request.ClientSideID,
	}

	if request.AttachmentFileID != nil {
		meta, err := uc.fileRepo.FindMeta(ctx, uc.db, *request.AttachmentFileID)
		if err != nil {
			// The message is already persisted; broadcast without the
			// attachment metadata rather than failing the send.
			uc.log.WithError(err).Warnf("failed to load attachment %d", *request.AttachmentFileID)
		} else {
			payload.AttachmentName = meta.Filename
			payload.AttachmentType = meta.MimeType
			payload.AttachmentURL = uc.fileURL(meta.FileID)
		}
	}

	push, err := uc.composePush(ctx, senderID, receiverID, request)
	if err != nil {
		uc.log.WithError(err).Warn("failed to compose push notification")
		return payload, dto.PushNotification{}, nil
	}
	return payload, push, nil
}

// composePush returns a zero-token notification when the receiver has no
// registered device.
func (uc *messageUsecase) composePush(ctx context.Context, senderID, receiverID uint, request *req.SendMessageRequest) (dto.PushNotification, error) {
	var receiver entity.User
	if err := uc.userRepo.FindById(ctx, uc.db, &receiver, receiverID); err != nil {
		return dto.PushNotification{}, err
	}
	if receiver.FcmToken == "" {
		return dto.PushNotification{}, nil
	}

	body := request.Text
	if body == "" {
		if request.AttachmentFileID != nil {
			body = "Sent an attachment"
		} else {
			body = "New Message"
		}
	}

	title := "New Message"
	var sender entity.User
	if err := uc.userRepo.FindById(ctx, uc.db, &sender, senderID); err == nil && sender.FullName != "" {
		title = sender.FullName
	}

	return dto.PushNotification{
		Token: receiver.FcmToken,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"chat_id":    fmt.Sprintf("%d", request.ChatID),
			"sender_uid": request.SenderFirebaseUID,
		},
	}, nil
}

// RepairReadFlags marks every stored message as read. It backs the
// -repair-read maintenance mode, not any request path.
func (uc *messageUsecase) RepairReadFlags(ctx context.Context) (int64, error) {
	return uc.messageRepo.MarkAllRead(ctx, uc.db)
}
