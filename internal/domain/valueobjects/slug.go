package valueobjects

import (
	"errors"
	"regexp"
)

// SlugMaxLength é o tamanho máximo de um slug
const SlugMaxLength = 50

var (
	ErrSlugEmpty   = errors.New("slug is empty")
	ErrSlugTooLong = errors.New("slug too long")
	ErrSlugInvalid = errors.New("slug has invalid characters")
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidateSlug verifica se o valor é um slug URL-safe
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugEmpty
	}
	if len(slug) > SlugMaxLength {
		return ErrSlugTooLong
	}
	if !slugPattern.MatchString(slug) {
		return ErrSlugInvalid
	}
	return nil
}
