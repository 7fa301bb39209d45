package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	mqcontracts "github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/contracts/mq"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/fulfillment"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/mailer"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/util"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/metrics"
)

const alertEvent = "walsworth_order_fulfillment"

// AlertService is the immediate alert pipeline: one note-created event in,
// at most one email out. Every early exit is a silent no-op; only the final
// send outcome leaves a trace (admin notice, metric, outcome event).
type AlertService struct {
	orders     OrderStore
	notes      NoteStore
	recipients *RecipientResolver
	renderer   *mailer.Renderer
	mail       MailSender
	notices    NoticeSink
	publisher  EventPublisher
	dedupe     *util.NoteDeduper
	logger     *zap.Logger
}

func NewAlertService(
	orders OrderStore,
	notes NoteStore,
	recipients *RecipientResolver,
	renderer *mailer.Renderer,
	mail MailSender,
	notices NoticeSink,
	publisher EventPublisher,
	logger *zap.Logger,
) *AlertService {
	return &AlertService{
		orders:     orders,
		notes:      notes,
		recipients: recipients,
		renderer:   renderer,
		mail:       mail,
		notices:    notices,
		publisher:  publisher,
		dedupe:     util.NewNoteDeduper(),
		logger:     logger,
	}
}

// ProcessNote runs the pipeline for one announced note. The platform can
// announce the same note through two different events; the dedup guard
// keeps the second announcement from sending a second email. A non-nil
// error means an infrastructure failure worth retrying; every expected
// absence returns nil.
func (s *AlertService) ProcessNote(ctx context.Context, noteID, orderID, actorID int64) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil {
		return nil
	}

	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		return fmt.Errorf("load note %d: %w", noteID, err)
	}
	if note == nil {
		return nil
	}

	// Customer-visible notes are none of our business.
	if note.IsCustomerNote {
		metrics.IncrementNoteProcessed("skipped")
		return nil
	}

	if !s.dedupe.ShouldProcess(noteID) {
		s.logger.Info("Duplicate note event skipped",
			zap.Int64("note_id", noteID),
			zap.Int64("order_id", orderID),
		)
		metrics.IncrementNoteProcessed("duplicate")
		return nil
	}

	if !fulfillment.IsWalsworthNote(note.Content) {
		metrics.IncrementNoteProcessed("skipped")
		return nil
	}

	s.dedupe.MarkProcessed(noteID)

	data := &model.AlertData{
		Event:       alertEvent,
		GeneratedAt: time.Now(),
		Order:       order,
		Note:        note,
		Fulfillment: fulfillment.Parse(note.Content),
	}

	s.logger.Info("Sending mixed order alert",
		zap.Int64("note_id", noteID),
		zap.Int64("order_id", orderID),
		zap.String("fulfillment_status", data.Fulfillment.Status),
	)

	s.sendAlert(ctx, data, actorID)
	metrics.IncrementNoteProcessed("alerted")
	return nil
}

// sendAlert resolves the audience, renders and sends. All failure modes
// degrade to "no email this time" plus a one-time notice for the actor.
func (s *AlertService) sendAlert(ctx context.Context, data *model.AlertData, actorID int64) {
	recipients := s.recipients.Resolve(ctx)
	if len(recipients) == 0 {
		s.notices.Set(ctx, actorID, "Email alert FAILED: No recipients configured")
		metrics.IncrementAlertEmail("no_recipients")
		return
	}

	body, err := s.renderer.RenderAlert(data)
	if err != nil {
		s.logger.Error("Failed to render alert email",
			zap.Int64("order_id", data.Order.ID),
			zap.Error(err),
		)
		s.notices.Set(ctx, actorID, fmt.Sprintf("❌ Failed to send mixed order alert email for Order #%d", data.Order.ID))
		metrics.IncrementAlertEmail("failed")
		return
	}

	subject := mailer.AlertSubject(data.Order.Number)
	if err := s.mail.Send(mailer.AlertFromName, recipients, subject, body); err != nil {
		s.notices.Set(ctx, actorID, fmt.Sprintf("❌ Failed to send mixed order alert email for Order #%d", data.Order.ID))
		metrics.IncrementAlertEmail("failed")
		return
	}

	s.notices.Set(ctx, actorID, fmt.Sprintf(
		"✅ Mixed order alert email sent successfully for Order #%d to %d recipient(s)",
		data.Order.ID, len(recipients),
	))
	metrics.IncrementAlertEmail("sent")

	if s.publisher != nil {
		payload := mqcontracts.AlertSentPayload{
			NoteID:     data.Note.ID,
			OrderID:    data.Order.ID,
			Recipients: len(recipients),
			SentAt:     time.Now(),
		}
		if err := s.publisher.Publish(mqcontracts.RoutingKeyAlertSent, payload); err != nil {
			s.logger.Warn("Failed to publish alert outcome", zap.Error(err))
		}
	}
}
