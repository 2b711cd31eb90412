package config

import (
	"github.com/sirupsen/logrus"
)

func NewLogrus() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}
