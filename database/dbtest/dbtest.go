// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/lshigami/examcore/config"
	"github.com/lshigami/examcore/database"
	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh migrated sqlite database that lives until the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{Driver: "sqlite", Path: ":memory:"}, logger.Discard)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedAssignment stores the assessment with its nested sections, questions and
// options, then assigns it to the institute and batch.
func SeedAssignment(t testing.TB, db *gorm.DB, a *model.Assessment, instituteID, batchID uint) *model.AssessmentAssignment {
	t.Helper()
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	asg := &model.AssessmentAssignment{AssessmentID: a.ID, InstituteID: instituteID, BatchID: batchID}
	if err := db.Create(asg).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return asg
}
