package domain

import "time"

// Setting is a site-wide key/value entry. Keys are unique, so a key has at most one value.
type Setting struct {
	Key         string
	Text        string
	Description string

	UpdatedAt time.Time
}
