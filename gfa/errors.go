package gfa

import (
	"errors"
	"fmt"
)

// Error kinds form a closed set. Every error returned by this package
// wraps exactly one of these sentinels, so callers can test with
// errors.Is(err, gfa.ErrFormat) and similar.
var (
	// ErrFormat is a syntactic error: a field's raw text does not match
	// its datatype's validator.
	ErrFormat = errors.New("FormatError")

	// ErrType is a datatype mismatch: a predefined tag was given a value
	// of the wrong type.
	ErrType = errors.New("TypeError")

	// ErrNotFound is a missing required tag, field, or segment.
	ErrNotFound = errors.New("NotFoundError")

	// ErrNotUnique is an identity collision: a segment, path, or group
	// name already names a real record.
	ErrNotUnique = errors.New("NotUniqueError")

	// ErrInconsistency is a broken invariant, such as a duplicate tag
	// on one record, or LN not matching sequence length.
	ErrInconsistency = errors.New("InconsistencyError")

	// ErrVersion is a field that is only valid in the other GFA version.
	ErrVersion = errors.New("VersionError")

	// ErrArgument is a caller-supplied parameter out of range, such as
	// a negative multiplication factor.
	ErrArgument = errors.New("ArgumentError")

	// ErrRuntime is an unsupported case, such as a non-M CIGAR during
	// linear-path merging, or a mutation attempted on a virtual record.
	ErrRuntime = errors.New("RuntimeError")
)

func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrFormat, args)...)
}

func typeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrType, args)...)
}

func notFoundErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

func notUniqueErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotUnique, args)...)
}

func inconsistencyErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrInconsistency, args)...)
}

func versionErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrVersion, args)...)
}

func argumentErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrArgument, args)...)
}

func runtimeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrRuntime, args)...)
}

func prepend(first interface{}, rest []interface{}) []interface{} {
	out := make([]interface{}, 0, len(rest)+1)
	out = append(out, first)
	out = append(out, rest...)
	return out
}
