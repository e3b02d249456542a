package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID
	PhotoID     *uuid.UUID
	Name        string
	Slug        string
	Description string
	Type        string
	Price       Money
	Stock       int
	Available   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slugify lowercases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	var (
		sb      strings.Builder
		pending bool
	)

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}

	return sb.String()
}
