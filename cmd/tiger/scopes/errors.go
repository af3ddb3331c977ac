package scopes

import "errors"

var ErrUnknownScope = errors.New("unknown scope type")
