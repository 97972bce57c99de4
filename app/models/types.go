package models

import "time"

// Comment is one stored comment about a subject. PersonKey is the opaque
// grouping key the client derives from the subject's name and position;
// records are immutable once stored. JSON field names match the payload
// the web client has always used.
type Comment struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	PersonKey string    `json:"personKey" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Text      string    `json:"text" validate:"required,max=1000"`
	CreatedAt time.Time `json:"timestamp" validate:"required"`
}
