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
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/metrics"
)

// DigestService is the daily summary pipeline. Each run queries fresh
// state, so an order with a mixed note stays in every day's digest until
// its status leaves the tracked set. No cross-run bookkeeping.
type DigestService struct {
	orders     OrderStore
	notes      NoteStore
	recipients *RecipientResolver
	renderer   *mailer.Renderer
	mail       MailSender
	publisher  EventPublisher
	logger     *zap.Logger
}

func NewDigestService(
	orders OrderStore,
	notes NoteStore,
	recipients *RecipientResolver,
	renderer *mailer.Renderer,
	mail MailSender,
	publisher EventPublisher,
	logger *zap.Logger,
) *DigestService {
	return &DigestService{
		orders:     orders,
		notes:      notes,
		recipients: recipients,
		renderer:   renderer,
		mail:       mail,
		publisher:  publisher,
		logger:     logger,
	}
}

// Run executes one digest pass: collect qualifying orders, render once,
// send once. An empty qualifying set is a silent no-op, not an error.
func (s *DigestService) Run(ctx context.Context) error {
	summaries, err := s.collectQualifyingOrders(ctx)
	if err != nil {
		metrics.IncrementDigestRun("failed")
		return err
	}

	metrics.SetDigestOrderCount(len(summaries))

	if len(summaries) == 0 {
		s.logger.Info("No qualifying mixed fulfillment orders, skipping digest")
		metrics.IncrementDigestRun("empty")
		return nil
	}

	recipients := s.recipients.Resolve(ctx)
	if len(recipients) == 0 {
		s.logger.Warn("No digest recipients configured, skipping send")
		metrics.IncrementDigestRun("empty")
		return nil
	}

	data := &model.DigestData{
		GeneratedAt: time.Now(),
		TotalOrders: len(summaries),
		Orders:      summaries,
	}

	body, err := s.renderer.RenderDigest(data)
	if err != nil {
		metrics.IncrementDigestRun("failed")
		return fmt.Errorf("render digest: %w", err)
	}

	subject := mailer.DigestSubject(data.TotalOrders)
	if err := s.mail.Send(mailer.DigestFromName, recipients, subject, body); err != nil {
		metrics.IncrementDigestRun("failed")
		return fmt.Errorf("send digest: %w", err)
	}

	s.logger.Info("Daily digest sent",
		zap.Int("orders", data.TotalOrders),
		zap.Int("recipients", len(recipients)),
	)
	metrics.IncrementDigestRun("sent")

	if s.publisher != nil {
		payload := mqcontracts.DigestSentPayload{
			OrderCount: data.TotalOrders,
			Recipients: len(recipients),
			SentAt:     time.Now(),
		}
		if err := s.publisher.Publish(mqcontracts.RoutingKeyDigestSent, payload); err != nil {
			s.logger.Warn("Failed to publish digest outcome", zap.Error(err))
		}
	}

	return nil
}

// collectQualifyingOrders scans every order in the tracked statuses for its
// most recent strictly mixed note. Orders without one are excluded; a note
// listing failure drops that one order, not the whole run.
func (s *DigestService) collectQualifyingOrders(ctx context.Context) ([]model.OrderSummary, error) {
	orders, err := s.orders.ListByStatuses(ctx, model.DigestStatuses)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := []model.OrderSummary{}
	for _, order := range orders {
		notes, err := s.notes.ListByOrderDesc(ctx, order.ID)
		if err != nil {
			s.logger.Warn("Failed to list order notes, excluding order from digest",
				zap.Int64("order_id", order.ID),
				zap.Error(err),
			)
			continue
		}

		// Newest first: the first strict match wins, earlier mixed notes
		// on the same order are ignored.
		for _, note := range notes {
			if !fulfillment.IsMixedNote(note.Content) {
				continue
			}

			summaries = append(summaries, model.OrderSummary{
				OrderID:       order.ID,
				OrderNumber:   order.Number,
				OrderStatus:   order.Status,
				OrderDate:     order.CreatedAt,
				OrderTotal:    order.Total,
				CustomerName:  order.CustomerName(),
				CustomerEmail: order.BillingEmail,
				NoteDate:      note.CreatedAt,
				NoteAuthor:    note.Author,
				Fulfillment:   fulfillment.Parse(note.Content),
			})
			break
		}
	}

	return summaries, nil
}
