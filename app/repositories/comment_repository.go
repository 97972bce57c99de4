package repositories

import (
	"sync"

	"soapbox/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
	mu sync.Mutex
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Append stores one new comment under its person key. Appends are
// serialized so concurrent posts cannot race on the sequence counter;
// each append is a single transaction, so a failed post leaves no trace.
func (r *BadgerCommentRepository) Append(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		return txn.Set(commentKey(comment.PersonKey, seq), data)
	})
}

// ListByPerson retrieves all comments under a person key in insertion
// order. An unknown key yields an empty slice, not an error.
func (r *BadgerCommentRepository) ListByPerson(personKey string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := personPrefix(personKey)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll retrieves every comment grouped by person key, each group in
// insertion order.
func (r *BadgerCommentRepository) ListAll() (map[string][]*models.Comment, error) {
	grouped := make(map[string][]*models.Comment)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			grouped[comment.PersonKey] = append(grouped[comment.PersonKey], &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grouped, nil
}

// CountByPerson counts the comments stored under a person key without
// loading their values.
func (r *BadgerCommentRepository) CountByPerson(personKey string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := personPrefix(personKey)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
