package store

import "github.com/MKhiriev/threadboard/internal/logger"

// Storages groups every repository backed by one database.
type Storages struct {
	AccountRepository AccountRepository
	SessionRepository SessionRepository
	ThreadRepository  ThreadRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		ThreadRepository:  NewThreadRepository(db, logger),
	}
}
