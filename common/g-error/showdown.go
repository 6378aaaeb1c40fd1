package g_error

import "errors"

var (
	ErrUnknownToken       = errors.New("unknown card token")
	ErrMalformedCardToken = errors.New("malformed card token")
	ErrMissingID          = errors.New("line has no player id")
	ErrEmptyInput         = errors.New("no players supplied")
	ErrUnknownTieBreak    = errors.New("unknown tie break mode")
	ErrMatchMismatch      = errors.New("match result mismatch")
)
