package mqhandler

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	mqcontracts "github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/contracts/mq"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/metrics"
)

// NoteProcessor runs the alert pipeline for one announced note.
type NoteProcessor interface {
	ProcessNote(ctx context.Context, noteID, orderID, actorID int64) error
}

// OrderNoteHandler feeds note announcements into the alert pipeline. Two
// event shapes arrive here: the order-note event and the legacy comment
// event older platform versions emit for the same note. Both are
// normalized at this boundary; the pipeline's dedup guard absorbs the
// double fire.
type OrderNoteHandler struct {
	alerts NoteProcessor
	logger *zap.Logger
}

func NewOrderNoteHandler(alerts NoteProcessor, logger *zap.Logger) *OrderNoteHandler {
	return &OrderNoteHandler{
		alerts: alerts,
		logger: logger,
	}
}

// HandleNoteAdded processes the primary order.note_added event.
func (h *OrderNoteHandler) HandleNoteAdded(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()
	defer func() {
		metrics.RecordMQConsumeLatency(mqcontracts.RoutingKeyOrderNoteAdded, "order.note_added.q", time.Since(start))
	}()

	var p mqcontracts.OrderNoteAddedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		// Broken payload is non-retryable: ack it away.
		h.logger.Error("Failed to unmarshal note added payload (non-retryable)", zap.Error(err))
		return nil
	}

	return h.alerts.ProcessNote(ctx, p.NoteID, p.OrderID, p.ActorID)
}

// HandleCommentCreated processes the legacy order.comment_created event.
// Non-note comments are ignored; note comments are normalized into the
// primary shape.
func (h *OrderNoteHandler) HandleCommentCreated(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()
	defer func() {
		metrics.RecordMQConsumeLatency(mqcontracts.RoutingKeyCommentCreated, "order.comment_created.q", time.Since(start))
	}()

	var p mqcontracts.CommentCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal comment created payload (non-retryable)", zap.Error(err))
		return nil
	}

	if p.CommentType != "order_note" {
		return nil
	}

	return h.alerts.ProcessNote(ctx, p.CommentID, p.PostID, p.AuthorID)
}
