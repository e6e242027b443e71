package apperror

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)
)
