package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is.
var (
	// ErrDuplicateTimestamp indicates the source series already holds an
	// entry for the reading's timestamp.
	ErrDuplicateTimestamp = constError("duplicate timestamp")

	// ErrInvalidInput indicates a reading that fails the required or range
	// checks. Nothing is recorded.
	ErrInvalidInput = constError("invalid input")

	// ErrUnknownSource indicates a fuel source other than coal or gas.
	ErrUnknownSource = constError("unknown fuel source")
)
