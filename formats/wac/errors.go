package wac

import "errors"

var (
	ErrInvalidMagic        = errors.New("not a WAC file")
	ErrUnsupportedVersion  = errors.New("unsupported WAC version")
	ErrInvalidField        = errors.New("invalid WAC header field")
	ErrTruncatedStream     = errors.New("truncated WAC stream")
	ErrBlockSync           = errors.New("block sync pattern mismatch")
	ErrBlockSequence       = errors.New("block index out of sequence")
	ErrSampleCountMismatch = errors.New("sample count mismatch")
)
