package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lms-chat-server/entity"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// ChatListRow is one conversation-list row joined with the counterpart
// and the caller's unread count.
type ChatListRow struct {
	ChatID        uint      `gorm:"column:chat_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	RecipientName string    `gorm:"column:recipient_name"`
	RecipientUID  string    `gorm:"column:recipient_uid"`
	UnreadCount   int       `gorm:"column:unread_count"`
}

// FindByPair returns the chat for the ordered (student, instructor) pair,
// or nil when none exists. Callers insert on nil; the check-then-insert
// sequence is not atomic.
func (repository ChatRepository) FindByPair(ctx context.Context, db *gorm.DB, studentID, instructorID uint) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).
		Where("student_id = ? AND instructor_id = ?", studentID, instructorID).
		First(&chat).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository ChatRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uint) ([]ChatListRow, error) {
	var rows []ChatListRow
	err := db.WithContext(ctx).Raw(`
		SELECT c.chat_id, c.created_at,
		       CASE WHEN c.student_id = @uid THEN i.full_name ELSE s.full_name END AS recipient_name,
		       CASE WHEN c.student_id = @uid THEN i.firebase_uid ELSE s.firebase_uid END AS recipient_uid,
		       (SELECT COUNT(*) FROM messages m
		        WHERE m.chat_id = c.chat_id AND m.receiver_id = @uid AND m.is_read = @unread) AS unread_count
		FROM chats c
		JOIN users s ON c.student_id = s.user_id
		JOIN users i ON c.instructor_id = i.user_id
		WHERE c.student_id = @uid OR c.instructor_id = @uid
		ORDER BY c.created_at DESC`,
		map[string]interface{}{"uid": userID, "unread": false},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
