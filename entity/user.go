package entity

import "time"

// User is created and updated only through the sync endpoint; the
// firebase_uid column is the external identity every request carries.
type User struct {
	UserID      uint      `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	FirebaseUID string    `json:"firebase_uid" gorm:"column:firebase_uid;uniqueIndex;type:varchar(128)"`
	Email       string    `json:"email" gorm:"type:varchar(255)"`
	FullName    string    `json:"full_name" gorm:"column:full_name;type:varchar(255)"`
	Role        string    `json:"role" gorm:"type:varchar(32)"`
	Status      string    `json:"status" gorm:"type:varchar(32);default:'active'"`
	FcmToken    string    `json:"-" gorm:"column:fcm_token;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }
