package repositories

import (
	"log"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/confs"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/db"
)

// NewStorage picks the backend once at startup from configuration and returns
// the handle the rest of the process is wired with. There is no package-level
// state and no runtime hot-swap; callers hold the returned Storage for the
// process lifetime.
func NewStorage(cfg *confs.Config) (Storage, error) {
	if cfg.UseMemoryStorage {
		log.Println("Using in-memory storage backend")
		return NewMemStorage(), nil
	}
	database, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Using Postgres storage backend")
	return NewPgStorage(database), nil
}
