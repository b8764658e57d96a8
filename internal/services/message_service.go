package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"bankclient/internal/dto"
)

type messageService struct {
	client Dispatcher
}

func NewMessageService(client Dispatcher) MessageServiceInterface {
	return &messageService{client: client}
}

func (s *messageService) Page(ctx context.Context, page, pageSize int) (*dto.Page[dto.MessageResponse], error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var result dto.Page[dto.MessageResponse]
	path := fmt.Sprintf("/message/page?page=%d&pageSize=%d", page, pageSize)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *messageService) MarkRead(ctx context.Context, messageID string) error {
	path := "/message/read?messageId=" + url.QueryEscape(messageID)
	return s.client.Do(ctx, http.MethodPost, path, nil, nil)
}

func (s *messageService) UnreadCount(ctx context.Context) (int, error) {
	var count int
	if err := s.client.Do(ctx, http.MethodGet, "/message/unread/count", nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}
