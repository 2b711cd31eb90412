package usecase

import (
	"context"

	"lms-chat-server/dto/req"
	"lms-chat-server/dto/res"
)

type UserUsecase interface {
	SyncUser(ctx context.Context, request *req.SyncUserRequest) (res.SyncUserResponse, error)
	SaveFcmToken(ctx context.Context, request *req.SaveFcmTokenRequest) error
}
