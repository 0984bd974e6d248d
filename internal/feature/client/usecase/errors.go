package usecase

import "errors"

// ErrClientNotFound is returned by FindByEmail when no client has the address.
var ErrClientNotFound = errors.New("client not found")
