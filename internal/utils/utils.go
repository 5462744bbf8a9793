package utils

import (
	"mime"
	"regexp"
)

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*" and JSON payloads.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/.+\+json$`),
}

// IsTextContentType reports whether the given Content-Type header value
// describes a text-based payload that is safe to dump into logs.
func IsTextContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if pattern.MatchString(mediaType) {
			return true
		}
	}

	return false
}
