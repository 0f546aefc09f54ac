package usecase

import (
	"fmt"

	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
)

// parseID validates an entity identifier before any store access.
func parseID(kind, raw string) (string, error) {
	id, ok := idgen.Parse(raw)
	if !ok {
		return "", fmt.Errorf("%w: invalid %s id %q", ErrInvalidInput, kind, raw)
	}
	return id, nil
}
