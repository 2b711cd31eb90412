package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms-chat-server/dto/req"
	"lms-chat-server/entity"
	"lms-chat-server/usecase"
)

func TestSyncUserCreatesThenUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.users.SyncUser(ctx, &req.SyncUserRequest{
		FirebaseUID: "u1",
		Email:       "alice@example.com",
		FullName:    "Alice",
		Role:        "student",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.UserID)
	assert.Equal(t, "student", first.Role)

	// Second sync overwrites email and name only; the stored role wins.
	second, err := f.users.SyncUser(ctx, &req.SyncUserRequest{
		FirebaseUID: "u1",
		Email:       "alice@school.edu",
		FullName:    "Alice Smith",
		Role:        "instructor",
	})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "student", second.Role)

	var count int64
	require.NoError(t, f.db.Model(&entity.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored entity.User
	require.NoError(t, f.db.Where("firebase_uid = ?", "u1").Take(&stored).Error)
	assert.Equal(t, "alice@school.edu", stored.Email)
	assert.Equal(t, "Alice Smith", stored.FullName)
	assert.Equal(t, "student", stored.Role)
	assert.Equal(t, "active", stored.Status)
}

func TestSyncUserRejectsInvalidRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.SyncUser(context.Background(), &req.SyncUserRequest{
		FirebaseUID: "u1",
		Email:       "not-an-email",
		FullName:    "Alice",
		Role:        "student",
	})
	assert.Error(t, err)
}

func TestSaveFcmToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.users.SaveFcmToken(ctx, &req.SaveFcmTokenRequest{
		FirebaseUID: "ghost",
		FcmToken:    "tok-1",
	})
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)

	_, err = f.users.SyncUser(ctx, &req.SyncUserRequest{
		FirebaseUID: "u1", Email: "alice@example.com", FullName: "Alice", Role: "student",
	})
	require.NoError(t, err)

	require.NoError(t, f.users.SaveFcmToken(ctx, &req.SaveFcmTokenRequest{
		FirebaseUID: "u1",
		FcmToken:    "tok-1",
	}))

	var stored entity.User
	require.NoError(t, f.db.Where("firebase_uid = ?", "u1").Take(&stored).Error)
	assert.Equal(t, "tok-1", stored.FcmToken)
}
