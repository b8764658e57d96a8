package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"bankclient/internal/dto"
)

// MessageServiceSuite defines the test suite for the inbox client
type MessageServiceSuite struct {
	suite.Suite
	dispatcher *fakeDispatcher
	service    MessageServiceInterface
}

func TestMessageServiceSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceSuite))
}

func (s *MessageServiceSuite) SetupTest() {
	s.dispatcher = &fakeDispatcher{}
	s.service = NewMessageService(s.dispatcher)
}

func (s *MessageServiceSuite) TestPage_DefaultsPagination() {
	s.dispatcher.respond = func(call dispatchCall, out any) error {
		return fill(out, map[string]any{
			"total": 2,
			"records": []map[string]any{
				{"messageId": "M1", "type": dto.MessageTypeSecurity, "isRead": 0},
				{"messageId": "M2", "type": dto.MessageTypeSystem, "isRead": 1},
			},
		})
	}

	page, err := s.service.Page(context.Background(), 0, 0)

	s.Require().NoError(err)
	s.Equal("/message/page?page=1&pageSize=20", s.dispatcher.lastCall().Path)
	s.Equal(int64(2), page.Total)
	s.Require().Len(page.Records, 2)
	s.Equal("M1", page.Records[0].MessageID)
}

func (s *MessageServiceSuite) TestMarkReadAndUnreadCount() {
	s.Require().NoError(s.service.MarkRead(context.Background(), "M1"))
	s.Equal("/message/read?messageId=M1", s.dispatcher.lastCall().Path)

	s.dispatcher.respond = func(call dispatchCall, out any) error {
		return fill(out, 5)
	}
	count, err := s.service.UnreadCount(context.Background())
	s.Require().NoError(err)
	s.Equal(5, count)
}
