package repositories

import (
	"log"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/db"
)

// pgStorage is the Postgres backend. Each operation is a single independent
// statement; there is no multi-statement transaction around read-then-write
// pairs, so a concurrent update between the two steps is last-writer-wins.
// The GORM handle is shared across requests and safe for concurrent use; no
// extra coordination happens here.
type pgStorage struct {
	db db.Database
}

// NewPgStorage returns a Storage backed by the given database handle.
func NewPgStorage(database db.Database) Storage {
	return &pgStorage{db: database}
}

// fail logs a backend error with the failing operation and returns it
// unchanged. Absence and uniqueness conflicts never go through here.
func fail(op string, err error) error {
	log.Printf("storage: %s failed: %v", op, err)
	return err
}
