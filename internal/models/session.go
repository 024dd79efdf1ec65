package models

// SessionResponse is returned by the login and logout endpoints
type SessionResponse struct {
	Success bool `json:"success"`
}

// MessageResponse is the body of the 401 and 403 gate responses
type MessageResponse struct {
	Message string `json:"message"`
}
