package wavl

// TreeError is an error type for the wavl module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged by Insert if the key is already present.
const ErrDuplicateKey = TreeError("wavl: duplicate key")

// ErrKeyNotFound is flagged by Delete if the key is not present.
const ErrKeyNotFound = TreeError("wavl: key not found")

// ErrIndexOutOfBounds is flagged whenever a position is not within 1…Size().
const ErrIndexOutOfBounds = TreeError("wavl: index out of bounds")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("wavl: invalid configuration")

// ErrCorrupt signals a broken tree invariant. Seeing it always means a bug in
// this package.
const ErrCorrupt = TreeError("wavl: tree invariant violated")
