package response

var (
	ErrMissingPreviewParams = ErrorResponseWithDetails("invalid_request", "Missing required parameters: id and token")
	ErrInvalidPreviewToken  = ErrorResponseWithDetails("invalid_token", "Invalid token")
	ErrPreviewFailed        = ErrorResponseWithDetails("internal_error", "Failed to enable preview mode")
)
