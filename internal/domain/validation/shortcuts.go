package validation

import (
	"fmt"
	"strings"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

// ValidateAccelerator reports syntax problems in a shortcut's key combination.
func ValidateAccelerator(field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := entity.ParseAccelerator(value); err != nil {
		return []string{fmt.Sprintf("%s: %v", field, err)}
	}
	return nil
}

// ValidateApplicationID checks the desktop id looks like one.
func ValidateApplicationID(field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, "/ \t\r\n") {
		return []string{field + " must be a desktop file id, not a path or command"}
	}
	return nil
}

// ValidateArguments rejects arguments that would break the single command line.
func ValidateArguments(field, value string) []string {
	if strings.ContainsAny(value, "\r\n") {
		return []string{field + " must not contain newlines"}
	}
	return nil
}

// DuplicateIDs returns ids that appear more than once, in first-seen order.
func DuplicateIDs(ids []string) []string {
	seen := make(map[string]int, len(ids))
	var dups []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}
