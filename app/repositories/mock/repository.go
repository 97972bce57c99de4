// Package mock provides in-memory CommentRepository implementations for
// tests and for callers that need a repository without a database.
package mock

import (
	"sync"

	"soapbox/app/models"
)

// CommentRepository is a map-backed repository guarded by a RWMutex.
type CommentRepository struct {
	comments map[string][]*models.Comment
	mutex    sync.RWMutex
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string][]*models.Comment),
	}
}

func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments = make(map[string][]*models.Comment)
}

func (m *CommentRepository) Append(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.comments[comment.PersonKey] = append(m.comments[comment.PersonKey], comment)
	return nil
}

func (m *CommentRepository) ListByPerson(personKey string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stored := m.comments[personKey]
	comments := make([]*models.Comment, len(stored))
	copy(comments, stored)
	return comments, nil
}

func (m *CommentRepository) ListAll() (map[string][]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	grouped := make(map[string][]*models.Comment, len(m.comments))
	for personKey, stored := range m.comments {
		comments := make([]*models.Comment, len(stored))
		copy(comments, stored)
		grouped[personKey] = comments
	}
	return grouped, nil
}

func (m *CommentRepository) CountByPerson(personKey string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.comments[personKey]), nil
}

// FailingRepository returns Err from every operation. It exercises the
// service-unavailable paths.
type FailingRepository struct {
	Err error
}

func (f *FailingRepository) Append(comment *models.Comment) error {
	return f.Err
}

func (f *FailingRepository) ListByPerson(personKey string) ([]*models.Comment, error) {
	return nil, f.Err
}

func (f *FailingRepository) ListAll() (map[string][]*models.Comment, error) {
	return nil, f.Err
}

func (f *FailingRepository) CountByPerson(personKey string) (int, error) {
	return 0, f.Err
}
