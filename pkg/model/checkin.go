package model

// CheckinStepRequest carries one question/answer turn of the conversational
// check-in. The caller owns the conversation state and must resend it on
// every step.
type CheckinStepRequest struct {
	ConversationState map[string]string `json:"conversation_state"`
	UserInput         string            `json:"user_input"`
	InputMode         string            `json:"input_mode"`
}

type CheckinStepResponse struct {
	NextPrompt        string            `json:"next_prompt"`
	NextField         *string           `json:"next_field"`
	ConversationState map[string]string `json:"conversation_state"`
	IsComplete        bool              `json:"is_complete"`
	Errors            []string          `json:"errors,omitempty"`
}

type CheckinFinalizeRequest struct {
	FullName  string  `json:"full_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	IDNumber  *string `json:"id_number"`
	Purpose   *string `json:"purpose"`
	HostEmail string  `json:"host_email"`
}

type FieldValidationRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type FieldValidationResult struct {
	Field   string   `json:"field"`
	Value   string   `json:"value"`
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

type NotifyHostRequest struct {
	HostEmail   string `json:"host_email"`
	VisitorName string `json:"visitor_name"`
}

type TextToSpeechRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}
