package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/examcore/config"
	"github.com/lshigami/examcore/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.AppEnv == "development" {
		level = logger.Info
	}
	db, err := Open(cfg.Database, logger.Default.LogMode(level))
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return db, nil
}

// Open connects with the configured driver and tunes the pool.
func Open(cfg config.Database, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// One writer at a time; also keeps a :memory: database alive.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// Models lists every table owned by this service, in dependency order.
func Models() []any {
	return []any{
		&model.Institute{},
		&model.Batch{},
		&model.User{},
		&model.Assessment{},
		&model.Section{},
		&model.Question{},
		&model.Option{},
		&model.AssessmentAssignment{},
		&model.Attempt{},
		&model.Submission{},
		&model.ProctoringSetting{},
		&model.ProctoringLog{},
		&model.Report{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
