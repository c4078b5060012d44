package login

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/service"
)

type RequestLinkBody struct {
	Email string `json:"email" required:"true" maxLength:"320" doc:"Address the sign-in link is sent to"`
}

type RequestLinkInput struct {
	Body RequestLinkBody
}

type RequestLinkOutput struct{}

type CreateSessionBody struct {
	Token string `json:"token" required:"true" minLength:"1" doc:"Token from the sign-in link"`
}

type CreateSessionInput struct {
	Body CreateSessionBody
}

type Session struct {
	Token     string `json:"token" doc:"Bearer token for the Authorization header"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 expiry"`
	Email     string `json:"email"`
}

type CreateSessionOutput struct {
	Body Session
}

type CurrentUserInput struct{}

type CurrentUser struct {
	UserID string `json:"userId" format:"uuid"`
	Email  string `json:"email"`
}

type CurrentUserOutput struct {
	Body CurrentUser
}

type authenticator interface {
	RequestLink(ctx context.Context, email string) error
	VerifyLink(ctx context.Context, token string) (*service.Session, error)
}

// Handler implements passwordless sign-in.
type Handler struct {
	AuthService authenticator
}

func NewHandler(svc authenticator) *Handler {
	return &Handler{AuthService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "request-login-link",
		Method:        http.MethodPost,
		Path:          "/v1/auth/link",
		Summary:       "Request sign-in link",
		Description:   "Emails a single use sign-in link. Unknown addresses get an account on first sign-in.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusAccepted,
	}, h.requestLink)

	huma.Register(api, huma.Operation{
		OperationID: "create-session",
		Method:      http.MethodPost,
		Path:        "/v1/auth/session",
		Summary:     "Exchange sign-in link for a session",
		Tags:        []string{"Auth"},
	}, h.createSession)

	huma.Register(api, huma.Operation{
		OperationID: "get-current-user",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Get the signed-in user",
		Tags:        []string{"Auth"},
	}, h.currentUser)
}

func (h *Handler) requestLink(ctx context.Context, input *RequestLinkInput) (*RequestLinkOutput, error) {
	if err := h.AuthService.RequestLink(ctx, input.Body.Email); err != nil {
		return nil, httputil.ServiceError(err, "failed to send sign-in link")
	}
	return &RequestLinkOutput{}, nil
}

func (h *Handler) createSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	session, err := h.AuthService.VerifyLink(ctx, input.Body.Token)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to sign in")
	}
	return &CreateSessionOutput{Body: Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		Email:     session.Email,
	}}, nil
}

func (h *Handler) currentUser(ctx context.Context, _ *CurrentUserInput) (*CurrentUserOutput, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized(auth.ErrMissingToken.Error())
	}
	return &CurrentUserOutput{Body: CurrentUser{
		UserID: userID.String(),
		Email:  auth.EmailFromContext(ctx),
	}}, nil
}
