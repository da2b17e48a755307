package store

import "github.com/MKhiriev/go-post-board/internal/logger"

// Storages groups every repository backed by a single [DB].
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}
}
