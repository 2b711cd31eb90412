package config

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"lms-chat-server/config/common"
	"lms-chat-server/config/logger"
	"lms-chat-server/handler"
	"lms-chat-server/notification"
	"lms-chat-server/repository"
	"lms-chat-server/routes"
	"lms-chat-server/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*common.Config
	Push notification.Sender
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogrus()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	push := newPushSender(newConfig, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:      app,
		Validate: newValidator,
		Logger:   log,
		DBConfig: newDB,
		Config:   newConfig,
		Push:     push,
	})

	addr := ":" + newConfig.GetServerPort()
	log.Infof("Chat server running on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newChatRepository := repository.NewChatRepository()
	newMessageRepository := repository.NewMessageRepository()
	newFileRepository := repository.NewFileRepository()

	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newFileUsecase := usecase.NewFileUsecase(newFileRepository, aC.GetDB(), aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(aC.GetDB(), aC.Logger, newUserRepository, newMessageRepository, newFileRepository, aC.Config.GetPublicBaseURL())

	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger)
	newFileHandler := handler.NewFileHandler(newFileUsecase, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.DBConfig.AppLogger, newMessageUsecase, aC.Push)

	route := routes.ConfigRoute{
		App:            aC.App,
		UserHandler:    newUserHandler,
		ChatHandler:    newChatHandler,
		MessageHandler: newMessageHandler,
		FileHandler:    newFileHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func newPushSender(cfg *common.Config, log *logrus.Logger) notification.Sender {
	credFile := cfg.GetFirebaseCredentialsFile()
	if credFile == "" {
		log.Warn("FIREBASE_CREDENTIALS_FILE not set, push notifications disabled")
		return notification.DisabledSender{}
	}
	sender, err := notification.NewFCMSender(context.Background(), credFile)
	if err != nil {
		log.WithError(err).Error("Failed to init FCM, push notifications disabled")
		return notification.DisabledSender{}
	}
	return sender
}

// RunReadRepair marks every stored message as read and exits. It backs
// the -repair-read flag; it is an administrative correction, not part of
// request handling.
func RunReadRepair() {
	newConfig := common.NewViper()
	log := NewLogrus()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)

	messageUsecase := usecase.NewMessageUsecase(
		newDB.GetDB(),
		log,
		repository.NewUserRepository(),
		repository.NewMessageRepository(),
		repository.NewFileRepository(),
		newConfig.GetPublicBaseURL(),
	)

	updated, err := messageUsecase.RepairReadFlags(context.Background())
	if err != nil {
		log.WithError(err).Fatalf("Read repair failed: %v", err)
	}
	log.Infof("Updated %d messages.", updated)
}
