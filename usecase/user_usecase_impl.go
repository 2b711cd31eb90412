package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
	"lms-chat-server/entity"
	"lms-chat-server/repository"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger}
}

// SyncUser upserts on firebase_uid. A conflict overwrites email and full
// name only; the stored role and status win. This is the sole path that
// creates user rows.
func (uc *UserUsecaseImpl) SyncUser(ctx context.Context, request *req.SyncUserRequest) (res.SyncUserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate sync request: %v", err)
		return res.SyncUserResponse{}, err
	}

	user := entity.User{
		FirebaseUID: request.FirebaseUID,
		Email:       request.Email,
		FullName:    request.FullName,
		Role:        request.Role,
		Status:      "active",
	}
	if err := uc.UserRepository.Upsert(ctx, uc.DB, &user); err != nil {
		uc.Logger.WithError(err).Errorf("failed to sync user %s: %v", request.FirebaseUID, err)
		return res.SyncUserResponse{}, err
	}

	// Re-read so the response carries the stored role, not the one from
	// this request.
	stored, err := uc.UserRepository.FindByFirebaseUID(ctx, uc.DB, request.FirebaseUID)
	if err != nil {
		return res.SyncUserResponse{}, err
	}

	return res.SyncUserResponse{
		UserID: stored.UserID,
		Role:   stored.Role,
	}, nil
}

func (uc *UserUsecaseImpl) SaveFcmToken(ctx context.Context, request *req.SaveFcmTokenRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return err
	}

	userID, err := uc.UserRepository.FindIDByFirebaseUID(ctx, uc.DB, request.FirebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	return uc.UserRepository.UpdateFcmToken(ctx, uc.DB, userID, request.FcmToken)
}
