package services

import (
	"context"
	"log/slog"
	"net/http"

	"bankclient/internal/dto"
	"bankclient/internal/session"
)

type authService struct {
	client  Dispatcher
	session *session.Session
}

func NewAuthService(client Dispatcher, sess *session.Session) AuthServiceInterface {
	return &authService{
		client:  client,
		session: sess,
	}
}

// Login authenticates, installs the credential and user summary, and re-arms
// the dispatcher's invalidation latch for the new session generation.
func (s *authService) Login(ctx context.Context, userName, password string) (*session.UserSummary, error) {
	req := dto.LoginRequest{UserName: userName, Password: password}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var resp dto.LoginResponse
	if err := s.client.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	userID := resp.UserNo
	if userID == "" {
		userID = resp.UserID
	}
	user := session.UserSummary{
		UserID:   userID,
		UserName: resp.UserName,
		Name:     resp.Name,
	}

	if err := s.session.Login(resp.Token, user); err != nil {
		return nil, err
	}
	s.client.Rearm()

	slog.Info("login succeeded", "user_name", user.UserName)
	return &user, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var resp dto.RegisterResponse
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the gateway best-effort, then clears local state
// unconditionally. A failed or unreachable gateway never leaves a stale
// local session behind.
func (s *authService) Logout(ctx context.Context) error {
	err := s.client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		slog.Warn("logout call failed, clearing local session anyway", "error", err)
	}
	s.session.Clear()
	return err
}

// Profile fetches the canonical profile, refreshes the locally kept name,
// and applies the backend-reported KYC level verbatim.
func (s *authService) Profile(ctx context.Context) (*dto.UserProfileResponse, error) {
	var profile dto.UserProfileResponse
	if err := s.client.Do(ctx, http.MethodGet, "/user/profile/me", nil, &profile); err != nil {
		return nil, err
	}

	if current := s.session.User(); current != nil {
		name := profile.RealNameCn
		if name == "" {
			name = profile.Name
		}
		if name != "" && name != current.Name {
			current.Name = name
			if err := s.session.SetUser(*current); err != nil {
				return nil, err
			}
		}
	}

	if profile.KycLevel != nil {
		if err := s.session.ApplyKycLevel(session.Level(*profile.KycLevel)); err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

// VerifyToken checks the current credential with the gateway. An invalid
// token clears local state; the dispatcher's interception already covers the
// forced-logout variants.
func (s *authService) VerifyToken(ctx context.Context) (bool, error) {
	var valid bool
	if err := s.client.Do(ctx, http.MethodGet, "/auth/token/verify", nil, &valid); err != nil {
		return false, err
	}
	if !valid {
		s.session.Clear()
	}
	return valid, nil
}

func (s *authService) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	req := dto.UpdatePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodPost, "/auth/password/update", req, nil)
}

func (s *authService) UpdateTransactionPassword(ctx context.Context, password string) error {
	req := dto.UpdateTransactionPasswordRequest{Password: password}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodPost, "/auth/transPwd/update", req, nil)
}
