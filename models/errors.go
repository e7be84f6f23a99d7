package models

import "errors"

// ErrIdentityMismatch is returned when a payload claims an identity (through
// its id or localId keys) that differs from the key it is written under.
var ErrIdentityMismatch = errors.New("payload identity does not match document key")
