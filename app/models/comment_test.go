package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:        uuid.NewString(),
				PersonKey: "Jane Doe - Senator",
				Name:      "Anonymous",
				Text:      "This is a valid comment",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing person key",
			comment: &Comment{
				ID:        uuid.NewString(),
				Name:      "Anonymous",
				Text:      "This is a valid comment",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "empty text",
			comment: &Comment{
				ID:        uuid.NewString(),
				PersonKey: "Jane Doe - Senator",
				Name:      "Anonymous",
				Text:      "",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "text too long",
			comment: &Comment{
				ID:        uuid.NewString(),
				PersonKey: "Jane Doe - Senator",
				Name:      "Anonymous",
				Text:      strings.Repeat("a", 1001),
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "name too long",
			comment: &Comment{
				ID:        uuid.NewString(),
				PersonKey: "Jane Doe - Senator",
				Name:      strings.Repeat("n", 101),
				Text:      "Valid content",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "invalid id",
			comment: &Comment{
				ID:        "not-a-uuid",
				PersonKey: "Jane Doe - Senator",
				Name:      "Anonymous",
				Text:      "Valid content",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			comment: &Comment{
				ID:        uuid.NewString(),
				PersonKey: "Jane Doe - Senator",
				Name:      "Anonymous",
				Text:      "Valid content",
				CreatedAt: time.Time{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{
		PersonKey: "Jane Doe - Senator",
		Name:      "Anonymous",
		Text:      "Valid content",
	}

	comment.BeforeCreate()

	_, err := uuid.Parse(comment.ID)
	assert.NoError(t, err)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.NoError(t, comment.Validate())
}

func TestCommentBeforeCreateOverridesClientTime(t *testing.T) {
	spoofed := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	comment := &Comment{
		PersonKey: "Jane Doe - Senator",
		Name:      "Anonymous",
		Text:      "Valid content",
		CreatedAt: spoofed,
	}

	comment.BeforeCreate()

	assert.NotEqual(t, spoofed, comment.CreatedAt)
	assert.WithinDuration(t, time.Now().UTC(), comment.CreatedAt, time.Minute)
}
