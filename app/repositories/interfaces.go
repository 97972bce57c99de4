package repositories

import "soapbox/app/models"

// CommentRepository defines the interface for comment data access. The
// store is append-only: comments are never updated or deleted here;
// moderation happens through an external administrative interface.
type CommentRepository interface {
	Append(comment *models.Comment) error
	ListByPerson(personKey string) ([]*models.Comment, error)
	ListAll() (map[string][]*models.Comment, error)
	CountByPerson(personKey string) (int, error)
}
