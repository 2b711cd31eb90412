package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lms-chat-server/config/common"
	"lms-chat-server/config/logger"
	"lms-chat-server/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		panic("failed to connect database")
	}

	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}
	log.Http.Info.Info().Msg("connection opened to database")

	applied, err := Migrate(db)
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("migration failed")
		panic("failed run migration")
	}
	for _, step := range applied {
		log.Http.Info.Info().Str("step", step).Msg("migration applied")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))
	return db
}

// Migrate brings the schema up to date. It is idempotent: tables are
// created only if missing, and the columns that postdate the initial
// deployment (messages.is_read, messages.attachment_file_id,
// users.fcm_token) are checked for existence before being added. The
// returned slice names the evolution steps that actually ran.
func Migrate(db *gorm.DB) ([]string, error) {
	m := db.Migrator()

	var applied []string
	if !m.HasTable(&entity.File{}) {
		applied = append(applied, "create files table")
	}
	if m.HasTable(&entity.Message{}) &&
		(!m.HasColumn(&entity.Message{}, "is_read") || !m.HasColumn(&entity.Message{}, "attachment_file_id")) {
		applied = append(applied, "add messages.is_read and messages.attachment_file_id")
	}
	if m.HasTable(&entity.User{}) && !m.HasColumn(&entity.User{}, "fcm_token") {
		applied = append(applied, "add users.fcm_token")
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Chat{},
		&entity.File{},
		&entity.Message{},
	); err != nil {
		return nil, err
	}
	return applied, nil
}
