package tracking

import "errors"

var ErrRequestNotFound = errors.New("tracking request not found")
