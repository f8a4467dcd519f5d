package httpdto

// Exact status strings of the operation contracts.
const (
	StatusNewMessage  = "new message"
	StatusGotChat     = "successfully got chat messages"
	StatusDeletedChat = "successfully deleted chat messages"
)

// ErrorResponse is the failure body for every endpoint: the detail plus
// the operation error code ("invalid-argument", "unknown").
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func NewErrorResponse(err string, code string) ErrorResponse {
	return ErrorResponse{
		Error: err,
		Code:  code,
	}
}
