package entity

import "time"

// File holds an uploaded attachment payload. Files are immutable and are
// never deleted; messages reference them by id.
type File struct {
	FileID    uint      `json:"file_id" gorm:"column:file_id;primaryKey;autoIncrement"`
	Filename  string    `json:"filename" gorm:"type:text;not null"`
	MimeType  string    `json:"mime_type" gorm:"column:mime_type;type:text;not null"`
	Data      []byte    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (File) TableName() string { return "files" }
