package domain

import "time"

// Folder represents a user-defined named grouping of bookmarks or notes.
type Folder struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required,max=100"`
	Color         string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	BookmarkCount int       `json:"bookmark_count"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}
