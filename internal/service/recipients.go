package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/config"
)

// RecipientResolver computes the notification audience: optionally every
// administrator account, plus the fixed list from configuration. The result
// is rebuilt on every send and never persisted.
type RecipientResolver struct {
	sendToAdmins bool
	extra        []string
	admins       AdminDirectory
	logger       *zap.Logger
}

func NewRecipientResolver(cfg config.NotificationConfig, admins AdminDirectory, logger *zap.Logger) *RecipientResolver {
	return &RecipientResolver{
		sendToAdmins: cfg.SendToAdmins,
		extra:        cfg.Recipients,
		admins:       admins,
		logger:       logger,
	}
}

// Resolve returns the deduplicated recipient list, empties removed,
// insertion order kept. An admin lookup failure degrades to the fixed list
// alone; an empty result is the caller's cannot-deliver signal.
func (r *RecipientResolver) Resolve(ctx context.Context) []string {
	var merged []string

	if r.sendToAdmins {
		adminEmails, err := r.admins.ListAdminEmails(ctx)
		if err != nil {
			r.logger.Warn("Failed to list administrator emails, continuing without them", zap.Error(err))
		} else {
			merged = append(merged, adminEmails...)
		}
	}

	merged = append(merged, r.extra...)

	seen := make(map[string]struct{}, len(merged))
	recipients := []string{}
	for _, email := range merged {
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		recipients = append(recipients, email)
	}

	return recipients
}
