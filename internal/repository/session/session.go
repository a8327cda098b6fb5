package session

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Session is the single storage handle shared by every repository bound to
// one unit of work. It wraps the global *gorm.DB and, once Begin has been
// called, the live transaction. Repositories hold a non-owning reference;
// the unit of work owns the session's lifetime.
//
// A Session is request-scoped and not safe for concurrent use.
type Session struct {
	db       *gorm.DB
	tx       *gorm.DB
	affected int64
	writeErr error
	closed   bool
}

func New(db *gorm.DB) *Session {
	return &Session{db: db}
}

// Handle returns the active transaction if one is open, otherwise the plain
// connection. Reads outside a transaction go straight to the database.
func (s *Session) Handle() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *Session) InTransaction() bool {
	return s.tx != nil
}

func (s *Session) Begin(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("session already closed")
	}
	if s.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	s.tx = tx
	return nil
}

// RecordWrite is called by repositories after every staged mutation so that
// Commit can report the total number of affected rows, and so that a failed
// write poisons the session: once any staged write has failed, Commit must
// refuse and roll everything back (all-or-nothing).
func (s *Session) RecordWrite(rows int64, err error) {
	if err != nil {
		if s.writeErr == nil {
			s.writeErr = err
		}
		return
	}
	s.affected += rows
}

func (s *Session) Affected() int64 {
	return s.affected
}

// Commit flushes every staged write atomically and returns the number of
// rows affected. If any write failed earlier, or the database rejects the
// commit, the transaction is rolled back and the store is unchanged.
func (s *Session) Commit() (int64, error) {
	if s.tx == nil {
		return 0, fmt.Errorf("no transaction to commit")
	}
	if s.writeErr != nil {
		err := s.writeErr
		s.tx.Rollback()
		s.reset()
		return 0, err
	}
	if err := s.tx.Commit().Error; err != nil {
		s.reset()
		return 0, err
	}
	affected := s.affected
	s.reset()
	return affected, nil
}

func (s *Session) Rollback() error {
	if s.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := s.tx.Rollback().Error
	s.reset()
	return err
}

// Close releases the session on every exit path. An open transaction is
// rolled back. Close is idempotent so it is safe to defer unconditionally.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.tx != nil {
		err := s.tx.Rollback().Error
		s.reset()
		return err
	}
	return nil
}

func (s *Session) reset() {
	s.tx = nil
	s.affected = 0
	s.writeErr = nil
}
