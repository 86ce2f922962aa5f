package wac

import (
	"errors"
	"testing"
)

func allErrors() map[string]error {
	return map[string]error{
		"ErrInvalidMagic":        ErrInvalidMagic,
		"ErrUnsupportedVersion":  ErrUnsupportedVersion,
		"ErrInvalidField":        ErrInvalidField,
		"ErrTruncatedStream":     ErrTruncatedStream,
		"ErrBlockSync":           ErrBlockSync,
		"ErrBlockSequence":       ErrBlockSequence,
		"ErrSampleCountMismatch": ErrSampleCountMismatch,
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	expected := map[string]string{
		"ErrInvalidMagic":        "not a WAC file",
		"ErrUnsupportedVersion":  "unsupported WAC version",
		"ErrInvalidField":        "invalid WAC header field",
		"ErrTruncatedStream":     "truncated WAC stream",
		"ErrBlockSync":           "block sync pattern mismatch",
		"ErrBlockSequence":       "block index out of sequence",
		"ErrSampleCountMismatch": "sample count mismatch",
	}

	for name, err := range allErrors() {
		if err == nil {
			t.Fatalf("%s is nil", name)
		}
		if err.Error() != expected[name] {
			t.Errorf("%s.Error() = %q, want %q", name, err.Error(), expected[name])
		}
	}
}

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	for name, err := range allErrors() {
		name, err := name, err
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(err, err) {
				t.Errorf("errors.Is(%s, %s) = false, want true", name, name)
			}

			otherErr := errors.New("some other error")
			if errors.Is(otherErr, err) {
				t.Errorf("errors.Is(otherErr, %s) = true, want false", name)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for name, err := range allErrors() {
		name, err := name, err
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			wrappedErr := errors.Join(err, errors.New("additional context"))
			if !errors.Is(wrappedErr, err) {
				t.Errorf("errors.Is(wrappedErr, %s) = false, want true", name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	// Distinct instances and distinct messages.
	seen := make(map[string]string)
	for name, err := range allErrors() {
		msg := err.Error()
		if existing, found := seen[msg]; found {
			t.Errorf("%s has the same message as %s: %q", name, existing, msg)
		}
		seen[msg] = name
	}
}
