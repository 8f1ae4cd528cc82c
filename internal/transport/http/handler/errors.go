package handler

// Client-facing messages. Internal error details are logged, never echoed.
const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid username or password"
	errPermissionDenied   = "Permission denied"
	errUsernameTaken      = "Username already exists"
	errUserNotFound       = "User not found"
	errMovieNotFound      = "Movie not found"
	errGenreNotFound      = "Genre not found"
	errDirectorNotFound   = "Director not found"
)

// Machine-readable error kinds carried alongside the message.
const (
	kindValidation         = "validation_error"
	kindConflict           = "conflict"
	kindInvalidCredentials = "invalid_credentials"
	kindPermissionDenied   = "permission_denied"
	kindNotFound           = "not_found"
	kindInternal           = "internal"
)
