package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      string `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}
