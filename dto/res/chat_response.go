package res

import "time"

// ChatSummary is one row of the conversation list: the chat annotated
// with the counterpart and the caller's unread count.
type ChatSummary struct {
	ChatID        uint      `json:"chat_id"`
	CreatedAt     time.Time `json:"created_at"`
	RecipientName string    `json:"recipient_name"`
	RecipientUID  string    `json:"recipient_uid"`
	UnreadCount   int       `json:"unread_count"`
}

type CreateChatResponse struct {
	ChatID uint `json:"chat_id"`
	IsNew  bool `json:"isNew"`
}
