package tables

import "errors"

var (
	ErrInvalidGenomeLength = errors.New("invalid genome length")
	ErrInvalidNodeValue    = errors.New("invalid node id")
	ErrInvalidPosition     = errors.New("invalid value for position")
	ErrInvalidLeftRight    = errors.New("invalid position range")
	ErrInvalidTime         = errors.New("invalid value for time")
	ErrInvalidDeme         = errors.New("invalid value for deme")
)
