package model

import "time"

// Strategy is a free-form tag a trade may optionally reference.
type Strategy struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ImageReferences []string  `json:"imageReferences"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}
