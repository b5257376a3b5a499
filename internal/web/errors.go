package web

import "errors"

var ErrMissingValue = errors.New("web: missing value parameter")
