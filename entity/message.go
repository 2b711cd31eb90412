package entity

import "time"

// Message rows are immutable except for the is_read flag, which only
// transitions false -> true.
type Message struct {
	MessageID        uint      `json:"message_id" gorm:"column:message_id;primaryKey;autoIncrement"`
	ChatID           uint      `json:"chat_id" gorm:"column:chat_id;not null;index"`
	SenderID         uint      `json:"sender_id" gorm:"column:sender_id;not null"`
	ReceiverID       uint      `json:"receiver_id" gorm:"column:receiver_id;not null"`
	Text             string    `json:"text" gorm:"type:text"`
	IsRead           bool      `json:"is_read" gorm:"column:is_read;default:false"`
	AttachmentFileID *uint     `json:"attachment_file_id" gorm:"column:attachment_file_id"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`

	Chat       Chat  `json:"-" gorm:"foreignKey:ChatID;references:ChatID"`
	Sender     User  `json:"-" gorm:"foreignKey:SenderID;references:UserID"`
	Receiver   User  `json:"-" gorm:"foreignKey:ReceiverID;references:UserID"`
	Attachment *File `json:"-" gorm:"foreignKey:AttachmentFileID;references:FileID"`
}

func (Message) TableName() string { return "messages" }
