package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"bankclient/internal/dto"
	"bankclient/internal/session"
)

type userService struct {
	client  Dispatcher
	session *session.Session
}

func NewUserService(client Dispatcher, sess *session.Session) UserServiceInterface {
	return &userService{
		client:  client,
		session: sess,
	}
}

// SubmitCertification files the KYC account-opening application. The local
// level advances to verified only after the gateway accepts the submission;
// a failed call leaves the level untouched.
func (s *userService) SubmitCertification(ctx context.Context, req dto.CertificationRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if err := s.client.Do(ctx, http.MethodPost, "/user/certify", req, nil); err != nil {
		return err
	}

	if err := s.session.CompleteKyc(); err != nil {
		return err
	}
	slog.Info("kyc certification accepted", "id_card_type", req.IDCardType)
	return nil
}

// UploadDocument pushes an identity document and returns its stored URL.
func (s *userService) UploadDocument(ctx context.Context, filename string, file io.Reader) (string, error) {
	var url string
	if err := s.client.Upload(ctx, "/user/file/upload", "file", filename, file, &url); err != nil {
		return "", err
	}
	return url, nil
}
