package storage

// Logical keys in the durable key space. Both values are JSON text.
const (
	KeyProfile  = "user_profile"
	KeyCheckIns = "checkins"
)

// Store is a durable key-value store. Writes are atomic per key: a reader
// never observes a half-written value. Operations do not retry on failure;
// the caller decides.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
