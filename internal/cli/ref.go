package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/todos/pkg/types"
)

var errAmbiguousRef = errors.New("ambiguous reference")

// resolveRef maps a reference to an item ID. A number between 1 and the
// list length is a position in the full list; anything else is matched as
// an ID prefix, which must be unique.
func resolveRef(todos []types.Todo, ref string) (string, error) {
	if ref == "" {
		return "", userError(fmt.Errorf("empty reference: %w", types.ErrNotFound))
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(todos) {
		return todos[n-1].ID, nil
	}

	var match string
	for _, t := range todos {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if match != "" {
			return "", userError(fmt.Errorf("%w: %q matches more than one todo", errAmbiguousRef, ref))
		}
		match = t.ID
	}
	if match == "" {
		return "", userError(fmt.Errorf("no todo matches %q: %w", ref, types.ErrNotFound))
	}
	return match, nil
}
