package actions

import (
	"context"
	"time"

	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// CreateLoginLink finds or creates the user for Email and stores a sign-in
// token hash for them.
type CreateLoginLink struct {
	Email     string
	TokenHash string
	ExpiresAt time.Time

	User *sqlconfig.User
}

func (c *CreateLoginLink) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.FindOrCreateByEmail(ctx, c.Email)
	if err != nil {
		return err
	}

	if err := writer.LoginLinks.Insert(ctx, user.ID, c.TokenHash, c.ExpiresAt); err != nil {
		return err
	}

	c.User = user
	return nil
}

// ConsumeLoginLink marks a sign-in token used. User stays nil when the token
// is unknown, expired or already used.
type ConsumeLoginLink struct {
	TokenHash string
	Now       time.Time

	User *sqlconfig.User
}

func (c *ConsumeLoginLink) Perform(ctx context.Context, writer *storage.Writer) error {
	link, err := writer.LoginLinks.Consume(ctx, c.TokenHash, c.Now)
	if err != nil {
		return err
	}
	if link == nil {
		return nil
	}

	c.User, err = writer.Users.FindByID(ctx, link.UserID)
	return err
}
