package mentortools

import (
	"errors"
	"fmt"
	"net/http"

	"mentortools-mcp/internal/httpx"
)

// ClassifyError renders any failure as the single user-facing line a tool
// returns. A nil error renders as "".
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return statusMessage(apiErr.Status, apiErr.Message)
	}
	if httpx.IsTimeout(err) {
		return "Error: Request timed out. Please try again."
	}
	if httpx.IsConnectFailure(err) {
		return "Error: Could not connect to Mentortools API. Please check your internet connection."
	}
	return "Error: " + err.Error()
}

// Unexpected renders a recovered non-error failure value.
func Unexpected(v any) string {
	return fmt.Sprintf("Error: Unexpected error occurred: %v", v)
}

func statusMessage(status int, msg string) string {
	switch status {
	case http.StatusBadRequest:
		return fmt.Sprintf("Error: Bad request - %s. Please check your input parameters.", msg)
	case http.StatusUnauthorized:
		return "Error: Unauthorized. Please check your API key."
	case http.StatusForbidden:
		return "Error: Forbidden. You don't have permission to access this resource."
	case http.StatusNotFound:
		return "Error: Resource not found. Please verify the ID is correct."
	case http.StatusUnprocessableEntity:
		return fmt.Sprintf("Error: Validation error - %s. Please check the required fields.", msg)
	case http.StatusTooManyRequests:
		return "Error: Rate limit exceeded. Please wait before making more requests."
	case http.StatusInternalServerError:
		return fmt.Sprintf("Error: Internal server error - %s. Please try again later.", msg)
	default:
		return fmt.Sprintf("Error: API request failed with status %d - %s", status, msg)
	}
}
