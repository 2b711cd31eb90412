package entity

import "time"

// Chat pairs exactly one student with one instructor. Uniqueness of the
// pair is checked before insert, not enforced by a constraint.
type Chat struct {
	ChatID       uint      `json:"chat_id" gorm:"column:chat_id;primaryKey;autoIncrement"`
	StudentID    uint      `json:"student_id" gorm:"column:student_id;not null"`
	InstructorID uint      `json:"instructor_id" gorm:"column:instructor_id;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student    User      `json:"-" gorm:"foreignKey:StudentID;references:UserID"`
	Instructor User      `json:"-" gorm:"foreignKey:InstructorID;references:UserID"`
	Messages   []Message `json:"-" gorm:"foreignKey:ChatID"`
}

func (Chat) TableName() string { return "chats" }
