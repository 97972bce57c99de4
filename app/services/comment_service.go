package services

import (
	"strings"

	"soapbox/app/filter"
	"soapbox/app/models"
	"soapbox/app/repositories"
)

const (
	maxTextLength = 1000
	maxNameLength = 100

	// AnonymousName is stored when a submission carries no display name.
	AnonymousName = "Anonymous"
)

// CommentService is the authoritative gate in front of the comment store.
// The web client runs the same content filter for immediate feedback, but
// nothing it sends is trusted: every submission is re-checked here.
type CommentService struct {
	repo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(repo repositories.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// PostComment validates and stores one comment under personKey, returning
// the stored record with its server-assigned ID and timestamp. Rejections
// are typed: ErrEmptyComment for blank text, *ValidationError for content
// violations, *UnavailableError when the store cannot confirm the append.
func (s *CommentService) PostComment(personKey, name, text string) (*models.Comment, error) {
	if personKey == "" {
		return nil, &ValidationError{Violations: []string{"personKey is required"}}
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}

	var violations []string
	if len(name) > maxNameLength {
		violations = append(violations, "name is too long (maximum 100 characters)")
	}
	if len(text) > maxTextLength {
		violations = append(violations, "comment is too long (maximum 1000 characters)")
	}
	violations = mergeViolations(violations, filter.Check(name).Violations)
	violations = mergeViolations(violations, filter.Check(text).Violations)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	comment := &models.Comment{
		PersonKey: personKey,
		Name:      name,
		Text:      text,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, &ValidationError{Violations: []string{err.Error()}}
	}

	if err := s.repo.Append(comment); err != nil {
		return nil, &UnavailableError{Err: err}
	}
	return comment, nil
}

// GetComments retrieves all comments under a person key in insertion
// order. Unknown keys yield an empty slice.
func (s *CommentService) GetComments(personKey string) ([]*models.Comment, error) {
	comments, err := s.repo.ListByPerson(personKey)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	return comments, nil
}

// GetAllComments retrieves every stored comment grouped by person key.
func (s *CommentService) GetAllComments() (map[string][]*models.Comment, error) {
	grouped, err := s.repo.ListAll()
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	return grouped, nil
}

// GetCommentCount reports how many comments are stored under a person key.
func (s *CommentService) GetCommentCount(personKey string) (int, error) {
	count, err := s.repo.CountByPerson(personKey)
	if err != nil {
		return 0, &UnavailableError{Err: err}
	}
	return count, nil
}

// mergeViolations appends labels from next that are not already present,
// so a phone number in both name and text is reported once.
func mergeViolations(existing, next []string) []string {
	for _, label := range next {
		seen := false
		for _, have := range existing {
			if have == label {
				seen = true
				break
			}
		}
		if !seen {
			existing = append(existing, label)
		}
	}
	return existing
}
