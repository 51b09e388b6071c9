package interfaces

// StorageManager provides access to the durable local storage backends.
type StorageManager interface {
	// SessionStorage returns the session storage interface.
	SessionStorage() SessionStorage

	// Close closes the underlying database connection.
	Close() error
}
