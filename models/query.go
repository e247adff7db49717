package models

type QuestionRequest struct {
	// Question is the free text question. Required.
	Question string `json:"question"`

	// Context is the optional context identifier the user is in,
	// e.g. "bet-slip/empty".
	Context string `json:"context,omitempty"`
}

type QuestionResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
