package service

import (
	"context"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
)

// OrderStore reads orders from the platform.
type OrderStore interface {
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]model.Order, error)
}

// NoteStore reads order notes from the platform.
type NoteStore interface {
	FindByID(ctx context.Context, id int64) (*model.OrderNote, error)
	ListByOrderDesc(ctx context.Context, orderID int64) ([]model.OrderNote, error)
}

// AdminDirectory lists administrator email addresses.
type AdminDirectory interface {
	ListAdminEmails(ctx context.Context) ([]string, error)
}

// MailSender dispatches one HTML email. Single attempt, no retry.
type MailSender interface {
	Send(fromName string, recipients []string, subject, htmlBody string) error
}

// NoticeSink stores a one-time admin banner for a user.
type NoticeSink interface {
	Set(ctx context.Context, userID int64, message string)
}

// EventPublisher announces pipeline outcomes on the events exchange.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}
