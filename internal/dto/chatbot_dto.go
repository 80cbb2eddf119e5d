package dto

// ChatRequest is the body of POST /chat. A missing message is treated as "".
type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// ErrorResponse is rendered by the fiber error handler for unexpected failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
