package dto

import "time"

// MessagePayload is broadcast on the chat channel (receive_message) and on
// the receiver's personal channel (new_notification) after a message is
// persisted. ClientSideID echoes the sender's correlation id.
type MessagePayload struct {
	MessageID        uint      `json:"message_id"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"created_at"`
	IsRead           bool      `json:"is_read"`
	AttachmentFileID *uint     `json:"attachment_file_id,omitempty"`
	AttachmentName   string    `json:"attachment_name,omitempty"`
	AttachmentType   string    `json:"attachment_type,omitempty"`
	AttachmentURL    string    `json:"attachment_url,omitempty"`
	ChatID           uint      `json:"chat_id"`
	SenderUID        string    `json:"sender_uid"`
	ReceiverUID      string    `json:"receiver_uid"`
	ClientSideID     string    `json:"client_side_id,omitempty"`
}

// PushNotification is the composed push for the receiving device. A zero
// Token means the receiver has no registered device.
type PushNotification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
