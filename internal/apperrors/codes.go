package apperrors

type Code string

const (
	CodeUnknown             Code = "UNKNOWN"
	CodeValidation          Code = "VALIDATION"
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeNotFound            Code = "NOT_FOUND"
	CodeAlreadyExists       Code = "ALREADY_EXISTS"
	CodeWrongPassword       Code = "WRONG_PASSWORD"
	CodeMissingRefreshToken Code = "MISSING_REFRESH_TOKEN"
	CodeInvalidRefreshToken Code = "INVALID_REFRESH_TOKEN"
	CodeUnauthenticated     Code = "UNAUTHENTICATED"
	CodePermissionDenied    Code = "PERMISSION_DENIED"
	CodeStorage             Code = "STORAGE"
	CodeInternal            Code = "INTERNAL"
)
