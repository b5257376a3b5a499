package datefmt

import "errors"

var (
	ErrInvalidDate     = errors.New("datefmt: invalid date")
	ErrUnsupportedType = errors.New("datefmt: unsupported value type")
)
