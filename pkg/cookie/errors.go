package cookie

import "errors"

var (
	// ErrNoSecret indicates no usable signing secret was provided.
	ErrNoSecret = errors.New("cookie: no signing secret provided")

	// ErrSecretTooShort indicates a signing secret below the minimum length.
	ErrSecretTooShort = errors.New("cookie: signing secret too short")

	// ErrCookieNotFound indicates the named cookie is absent from the request.
	ErrCookieNotFound = errors.New("cookie: not found")

	// ErrSignatureInvalid indicates the cookie value failed signature verification.
	ErrSignatureInvalid = errors.New("cookie: invalid signature")
)
