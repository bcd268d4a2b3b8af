package manifest

import (
	"errors"
	"fmt"
	"regexp"
)

// Validation is opt-in and lives here rather than in the renderers: the
// renderers reproduce whatever they are handed, and callers that want a
// stricter contract run Validate before rendering.

var (
	// ErrInvalidIdentifier flags a header guard or macro name that is not a
	// valid preprocessor identifier.
	ErrInvalidIdentifier = errors.New("manifest: invalid identifier")
	// ErrDuplicateMacroName flags repeated macro names, which would expand to
	// a broken header.
	ErrDuplicateMacroName = errors.New("manifest: duplicate macro name")
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the header guard and every macro name are valid
// preprocessor identifiers, that macro names are unique, and that indices
// and the tensor count are non-negative.
//
// It never compares NumTensors against len(Tensors); that mismatch is part
// of the supported contract.
func (m Manifest) Validate() error {
	if !identifierPattern.MatchString(m.HeaderGuard) {
		return fmt.Errorf("%w: header guard %q", ErrInvalidIdentifier, m.HeaderGuard)
	}
	if m.NumTensors != nil && *m.NumTensors < 0 {
		return fmt.Errorf("manifest: num_tensors must be >= 0, got %d", *m.NumTensors)
	}

	seen := make(map[string]struct{}, len(m.Tensors))
	for _, entry := range m.Tensors {
		if !identifierPattern.MatchString(entry.Name) {
			return fmt.Errorf("%w: macro name %q", ErrInvalidIdentifier, entry.Name)
		}
		if entry.Index < 0 {
			return fmt.Errorf("manifest: tensor index must be >= 0, got %d for %q", entry.Index, entry.Name)
		}
		if _, exists := seen[entry.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateMacroName, entry.Name)
		}
		seen[entry.Name] = struct{}{}
	}
	return nil
}
