package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lms-chat-server/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// MessageRow is one history row joined with the sender's uid and the
// attachment metadata when a file is referenced.
type MessageRow struct {
	MessageID        uint      `gorm:"column:message_id"`
	Text             string    `gorm:"column:text"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	IsRead           bool      `gorm:"column:is_read"`
	SenderUID        string    `gorm:"column:sender_uid"`
	AttachmentFileID *uint     `gorm:"column:attachment_file_id"`
	AttachmentName   *string   `gorm:"column:attachment_name"`
	AttachmentType   *string   `gorm:"column:attachment_type"`
}

func (repository MessageRepository) FindByChatID(ctx context.Context, db *gorm.DB, chatID uint) ([]MessageRow, error) {
	var rows []MessageRow
	err := db.WithContext(ctx).Raw(`
		SELECT m.message_id, m.text, m.created_at, m.is_read, u.firebase_uid AS sender_uid,
		       m.attachment_file_id, f.filename AS attachment_name, f.mime_type AS attachment_type
		FROM messages m
		JOIN users u ON m.sender_id = u.user_id
		LEFT JOIN files f ON m.attachment_file_id = f.file_id
		WHERE m.chat_id = ?
		ORDER BY m.created_at ASC`,
		chatID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkRead flips is_read for every unread message in the chat addressed
// to the given receiver. Repeat calls are no-ops.
func (repository MessageRepository) MarkRead(ctx context.Context, db *gorm.DB, chatID, receiverID uint) error {
	return db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("chat_id = ? AND receiver_id = ? AND is_read = ?", chatID, receiverID, false).
		Update("is_read", true).Error
}

// MarkAllRead sets every stored message to read. Maintenance only.
func (repository MessageRepository) MarkAllRead(ctx context.Context, db *gorm.DB) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
