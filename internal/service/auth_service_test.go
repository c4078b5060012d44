package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendLoginLink(ctx context.Context, email, link string) error {
	args := m.Called(ctx, email, link)
	return args.Error(0)
}

var authNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestAuthService(processor *fakeProcessor, mailer auth.Mailer) *AuthService {
	svc := NewAuthService(processor, auth.NewJWTManager("test-secret", time.Hour), mailer, 15*time.Minute, "https://gst.example.co.nz/")
	svc.now = fixedNow(authNow)
	return svc
}

func TestRequestLink_MailsToken(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	var stored *actions.CreateLoginLink
	processor := &fakeProcessor{handle: func(action actions.IAction) error {
		stored = action.(*actions.CreateLoginLink)
		stored.User = &sqlconfig.User{ID: userID, Email: stored.Email}
		return nil
	}}
	mailer := &mockMailer{}
	var sentLink string
	mailer.On("SendLoginLink", mock.Anything, "owner@example.co.nz", mock.Anything).
		Run(func(args mock.Arguments) { sentLink = args.String(2) }).
		Return(nil)
	svc := newTestAuthService(processor, mailer)

	err := svc.RequestLink(context.Background(), " Owner <owner@example.co.nz> ")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
	require.True(t, strings.HasPrefix(sentLink, "https://gst.example.co.nz/login?token="))

	parsed, err := url.Parse(sentLink)
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	assert.Equal(t, auth.HashLinkToken(token), stored.TokenHash)
	assert.Equal(t, authNow.Add(15*time.Minute), stored.ExpiresAt)
}

func TestRequestLink_InvalidEmail(t *testing.T) {
	processor := &fakeProcessor{}
	mailer := &mockMailer{}
	svc := newTestAuthService(processor, mailer)

	err := svc.RequestLink(context.Background(), "not an email")

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, processor.processed)
	mailer.AssertNotCalled(t, "SendLoginLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestLink_MailerError(t *testing.T) {
	processor := &fakeProcessor{handle: func(action actions.IAction) error {
		create := action.(*actions.CreateLoginLink)
		create.User = &sqlconfig.User{ID: uuid.Must(uuid.NewV4()), Email: create.Email}
		return nil
	}}
	mailer := &mockMailer{}
	mailer.On("SendLoginLink", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	svc := newTestAuthService(processor, mailer)

	err := svc.RequestLink(context.Background(), "owner@example.co.nz")

	assert.EqualError(t, err, "smtp down")
}

func TestVerifyLink_IssuesSession(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	processor := &fakeProcessor{handle: func(action actions.IAction) error {
		consume := action.(*actions.ConsumeLoginLink)
		assert.Equal(t, auth.HashLinkToken("raw-token"), consume.TokenHash)
		assert.Equal(t, authNow, consume.Now)
		consume.User = &sqlconfig.User{ID: userID, Email: "owner@example.co.nz"}
		return nil
	}}
	manager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(processor, manager, &mockMailer{}, time.Minute, "")
	svc.now = fixedNow(authNow)

	session, err := svc.VerifyLink(context.Background(), "raw-token")

	require.NoError(t, err)
	assert.Equal(t, "owner@example.co.nz", session.Email)
	claims, err := manager.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestVerifyLink_UsedOrExpired(t *testing.T) {
	svc := newTestAuthService(&fakeProcessor{}, &mockMailer{})

	session, err := svc.VerifyLink(context.Background(), "raw-token")

	assert.ErrorIs(t, err, auth.ErrLinkInvalid)
	assert.Nil(t, session)
}

func TestVerifyLink_EmptyToken(t *testing.T) {
	processor := &fakeProcessor{}
	svc := newTestAuthService(processor, &mockMailer{})

	_, err := svc.VerifyLink(context.Background(), "")

	assert.ErrorIs(t, err, auth.ErrLinkInvalid)
	assert.Empty(t, processor.processed)
}
