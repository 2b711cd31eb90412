package res

import "time"

// MessageRecord is one row of a chat's history, joined with the sender's
// external uid and, when present, the attachment metadata.
type MessageRecord struct {
	MessageID        uint      `json:"message_id"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"created_at"`
	IsRead           bool      `json:"is_read"`
	SenderUID        string    `json:"sender_uid"`
	AttachmentFileID *uint     `json:"attachment_file_id"`
	AttachmentName   string    `json:"attachment_name,omitempty"`
	AttachmentType   string    `json:"attachment_type,omitempty"`
	AttachmentURL    string    `json:"attachment_url,omitempty"`
}
