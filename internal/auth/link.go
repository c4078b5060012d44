package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"

	"github.com/sirupsen/logrus"
)

var ErrLinkInvalid = errors.New("sign-in link is invalid or has expired")

const linkTokenBytes = 32

// GenerateLinkToken returns a random URL-safe token for a sign-in link.
func GenerateLinkToken() (string, error) {
	buf := make([]byte, linkTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashLinkToken is the value persisted for a token. The raw token only ever
// leaves the server inside the link.
func HashLinkToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Mailer delivers sign-in links.
type Mailer interface {
	SendLoginLink(ctx context.Context, email, link string) error
}

// LogMailer writes links to the log instead of sending mail. Used for local
// development.
type LogMailer struct {
	Logger *logrus.Logger
}

func (m *LogMailer) SendLoginLink(_ context.Context, email, link string) error {
	m.Logger.WithFields(logrus.Fields{
		"email": email,
		"link":  link,
	}).Info("Auth.LoginLink.Sent")
	return nil
}
