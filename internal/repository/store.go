package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store groups the repositories over one connection or transaction.
type Store interface {
	Assignments() AssignmentRepository
	Assessments() AssessmentRepository
	Attempts() AttemptRepository
	Submissions() SubmissionRepository
	ProctoringSettings() ProctoringSettingRepository
	ProctoringLogs() ProctoringLogRepository
	Reports() ReportRepository
	Mirror() MirrorRepository

	// Transaction runs fn against a Store bound to a single database
	// transaction. Returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Assignments() AssignmentRepository { return NewAssignmentRepository(s.db) }
func (s *store) Assessments() AssessmentRepository { return NewAssessmentRepository(s.db) }
func (s *store) Attempts() AttemptRepository       { return NewAttemptRepository(s.db) }
func (s *store) Submissions() SubmissionRepository { return NewSubmissionRepository(s.db) }
func (s *store) ProctoringSettings() ProctoringSettingRepository {
	return NewProctoringSettingRepository(s.db)
}
func (s *store) ProctoringLogs() ProctoringLogRepository { return NewProctoringLogRepository(s.db) }
func (s *store) Reports() ReportRepository               { return NewReportRepository(s.db) }
func (s *store) Mirror() MirrorRepository                { return NewMirrorRepository(s.db) }

func (s *store) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// forUpdate adds FOR UPDATE on postgres. SQLite serializes writers per database.
func forUpdate(db *gorm.DB) *gorm.DB {
	if isPostgres(db) {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func forShare(db *gorm.DB) *gorm.DB {
	if isPostgres(db) {
		return db.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return db
}
