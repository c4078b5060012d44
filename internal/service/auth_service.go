package service

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/operator/actions"
)

var ErrInvalidEmail = errors.New("invalid email address")

// Session is a signed-in session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Email     string
}

// AuthService implements passwordless sign-in with single use links.
type AuthService struct {
	processor  ActionProcessor
	jwtManager *auth.JWTManager
	mailer     auth.Mailer
	linkTTL    time.Duration
	baseURL    string
	now        func() time.Time
}

func NewAuthService(processor ActionProcessor, jwtManager *auth.JWTManager, mailer auth.Mailer, linkTTL time.Duration, baseURL string) *AuthService {
	return &AuthService{
		processor:  processor,
		jwtManager: jwtManager,
		mailer:     mailer,
		linkTTL:    linkTTL,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
	}
}

// RequestLink creates a sign-in link for email and mails it.
func (s *AuthService) RequestLink(ctx context.Context, email string) error {
	address, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return ErrInvalidEmail
	}

	token, err := auth.GenerateLinkToken()
	if err != nil {
		return err
	}

	action := &actions.CreateLoginLink{
		Email:     address.Address,
		TokenHash: auth.HashLinkToken(token),
		ExpiresAt: s.now().Add(s.linkTTL).UTC(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}

	link := s.baseURL + "/login?token=" + url.QueryEscape(token)
	if err := s.mailer.SendLoginLink(ctx, action.User.Email, link); err != nil {
		logrus.WithError(err).WithField("userID", action.User.ID).Error("AuthService.RequestLink.SendLoginLink")
		return err
	}
	return nil
}

// VerifyLink exchanges a sign-in token for a session. Each token works once.
func (s *AuthService) VerifyLink(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, auth.ErrLinkInvalid
	}

	action := &actions.ConsumeLoginLink{TokenHash: auth.HashLinkToken(token), Now: s.now().UTC()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.User == nil {
		return nil, auth.ErrLinkInvalid
	}

	sessionToken, expiresAt, err := s.jwtManager.Generate(action.User.ID, action.User.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Token: sessionToken, ExpiresAt: expiresAt, Email: action.User.Email}, nil
}
