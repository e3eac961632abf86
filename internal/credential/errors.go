package credential

import "errors"

// ErrMalformedCode means the code is not valid hex or fails authentication
// under the key in use.
var ErrMalformedCode = errors.New("malformed credential code")

// ErrSeparator means the decrypted text does not hold exactly one separator.
var ErrSeparator = errors.New("credential separator must appear exactly once")

// ErrEmptyField means the account or the password is empty.
var ErrEmptyField = errors.New("account and password must both be non-empty")

// ErrBadKey means the code key has the wrong length or encoding.
var ErrBadKey = errors.New("invalid code key")
