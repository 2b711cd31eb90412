package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms-chat-server/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindIDByFirebaseUID is the identity bridge: it maps the auth provider's
// uid to the internal numeric id. Every call is a fresh lookup.
func (repository UserRepository) FindIDByFirebaseUID(ctx context.Context, db *gorm.DB, firebaseUID string) (uint, error) {
	var user entity.User
	err := db.WithContext(ctx).
		Select("user_id").
		Where("firebase_uid = ?", firebaseUID).
		Take(&user).Error
	if err != nil {
		return 0, err
	}
	return user.UserID, nil
}

func (repository UserRepository) FindByFirebaseUID(ctx context.Context, db *gorm.DB, firebaseUID string) (entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID).Take(&user).Error
	return user, err
}

// Upsert inserts the user or, when the firebase_uid already exists,
// overwrites email and full_name only. Role and status are never updated
// after the first sync.
func (repository UserRepository) Upsert(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "firebase_uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name"}),
	}).Create(user).Error
}

func (repository UserRepository) UpdateFcmToken(ctx context.Context, db *gorm.DB, userID uint, token string) error {
	return db.WithContext(ctx).
		Model(&entity.User{}).
		Where("user_id = ?", userID).
		Update("fcm_token", token).Error
}
