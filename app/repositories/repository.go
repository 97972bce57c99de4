package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// Open opens the Badger database at path with the options the comment
// service uses. An empty path opens an in-memory database, which is how
// tests run.
func Open(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path).
			WithSyncWrites(false).
			WithNumVersionsToKeep(1)
	}
	return badger.Open(opts.WithLogger(nil))
}
