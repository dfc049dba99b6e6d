package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizdesk/internal/apperrors"
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// requireText trims v and fails when nothing is left.
func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", validationErr("%s is required", field)
	}
	return v, nil
}

// trimPtr trims an optional string in place; a blank value is kept as an explicit empty string.
func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// blankToNil trims an optional string and drops it when blank.
func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

// uniqueIDs drops blanks and duplicates, keeping order.
func uniqueIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, validationErr("at least one id is required")
	}
	return out, nil
}
