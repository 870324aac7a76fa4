package models

const DefaultTemperature = 0.7

type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

type CompletionResult struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage_metadata"`
}
