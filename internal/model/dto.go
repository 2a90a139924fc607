package model

// ========== Prompt Relay DTOs ==========

type PromptRequest struct {
	Prompt string `json:"prompt"`
}

type PromptResponse struct {
	Message string `json:"message"`
}

// ========== Common DTOs ==========

type ErrorResponse struct {
	Error string `json:"error"`
}
