package utils

import (
	"strings"

	"github.com/aarondl/null/v8"
)

func ToPtr[T any](v T) *T {
	return &v
}

// NullString trims s and treats the empty result as NULL.
func NullString(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func NullStringToPtr(s null.String) *string {
	return s.Ptr()
}
