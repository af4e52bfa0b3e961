package database

import (
	"fmt"

	"qa_kb_backend/internal/config"
	"qa_kb_backend/internal/model"
	"qa_kb_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN clientFoundRows 使 UPDATE 的影响行数按匹配行计算，内容未变化时也不会被当作不存在
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnLifetime)

	logger.Log.Info("Database connection established",
		zap.String("host", cfg.Host),
		zap.String("db", cfg.DBName),
	)
	return db, nil
}

// Migrate 建表并初始化标识符序列行
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Question{},
		&model.Answer{},
		&model.ContextRow{},
		&model.QALink{},
		&model.Document{},
		&model.Paragraph{},
		&model.AccessToken{},
		&model.IDSequence{},
	)
	if err != nil {
		return err
	}

	for _, family := range []model.IDFamily{model.ContextFamily, model.AnswerFamily} {
		if err := db.Exec("INSERT IGNORE INTO id_sequences (family, last_value) VALUES (?, 0)", family.Name).Error; err != nil {
			return err
		}
	}

	logger.Log.Info("Database migration completed")
	return nil
}
