package usecase_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lms-chat-server/config"
	"lms-chat-server/repository"
	"lms-chat-server/usecase"
)

const testBaseURL = "http://localhost:3001"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	_, err = config.Migrate(db)
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	db       *gorm.DB
	users    usecase.UserUsecase
	chats    usecase.ChatUsecase
	messages usecase.MessageUsecase
	files    usecase.FileUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	validate := validator.New()

	userRepo := repository.NewUserRepository()
	chatRepo := repository.NewChatRepository()
	messageRepo := repository.NewMessageRepository()
	fileRepo := repository.NewFileRepository()

	return &fixture{
		db:       db,
		users:    usecase.NewUserUsecase(userRepo, validate, db, log),
		chats:    usecase.NewChatUsecase(chatRepo, userRepo, validate, db, log),
		messages: usecase.NewMessageUsecase(db, log, userRepo, messageRepo, fileRepo, testBaseURL),
		files:    usecase.NewFileUsecase(fileRepo, db, log),
	}
}
