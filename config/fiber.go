package config

import (
	"github.com/gofiber/fiber/v2"

	"lms-chat-server/config/common"
)

// MaxUploadSize caps attachment ingestion at 50 MiB.
const MaxUploadSize = 50 * 1024 * 1024

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: false,
		AppName:       appName,
		BodyLimit:     MaxUploadSize + 1024*1024, // multipart framing overhead
	})
}
