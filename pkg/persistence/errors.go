package persistence

import "errors"

var (
	// ErrIO is wrapped by every failure to read or write the underlying storage.
	ErrIO = errors.New("storage i/o failure")
	// ErrParse is wrapped when a stored document is not valid JSON for the target type.
	ErrParse = errors.New("malformed document")
	// ErrEncode is wrapped when a value can not be serialized to JSON.
	ErrEncode = errors.New("value is not json serializable")
)
