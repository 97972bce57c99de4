package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate assigns the record's identity before it is stored. The
// server clock is authoritative; any client-supplied timestamp is ignored.
func (c *Comment) BeforeCreate() {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
}
