package chat

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}
