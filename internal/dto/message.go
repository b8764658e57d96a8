package dto

// Message type discriminants.
const (
	MessageTypeTransaction = 1
	MessageTypeSecurity    = 2
	MessageTypeSystem      = 3
)

// MessageResponse is one inbox message.
type MessageResponse struct {
	MessageID  string `json:"messageId"`
	Type       int    `json:"type"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	IsRead     int    `json:"isRead"`
	CreateTime string `json:"createTime"`
}
