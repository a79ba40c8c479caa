package models

// ChatMessage is the inbound payload from any of the conversational front
// ends (WebSocket chat widget or the REST form host).
type ChatMessage struct {
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text"`
}

// ChatReply is the outbound payload: the engine's reply plus the step the
// session is in after processing, so form-style front ends can adjust their
// input widget.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Step      string `json:"step"`
}
