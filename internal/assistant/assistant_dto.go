package assistant

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type MessageResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type FragmentEvent struct {
	Text string `json:"text"`
}

type ErrorEvent struct {
	Code    string          `json:"code"`
	Message MessageResponse `json:"message"`
}

func mapMessage(m Message) MessageResponse {
	return MessageResponse{Role: m.Role, Text: m.Text}
}

func mapMessages(ms []Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, mapMessage(m))
	}
	return out
}
