package store

// Storages aggregates every repository backed by the shared database
// connection. The service layer depends on this struct rather than on
// individual repositories.
type Storages struct {
	PostRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB) *Storages {
	return &Storages{
		PostRepository: NewPostRepository(db),
	}
}
