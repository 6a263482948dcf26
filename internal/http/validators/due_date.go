package validators

import (
	"strings"
	"time"

	apperrors "task-list-service.com/task-list-service/internal/errors"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDueDate turns the optional dueDate field into a timestamp. A missing or
// blank value means no due date.
func ParseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, apperrors.ErrInvalidDueDate
}
