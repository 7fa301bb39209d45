package mq

import "time"

// Routing keys on the events exchange.
const (
	RoutingKeyOrderNoteAdded = "order.note_added"
	// Older platform versions emit the raw comment event instead of the
	// order-note event. Both can fire for the same note.
	RoutingKeyCommentCreated = "order.comment_created"

	RoutingKeyAlertSent  = "order.alert_sent"
	RoutingKeyDigestSent = "order.digest_sent"
)

// OrderNoteAddedPayload announces a new note on an order.
type OrderNoteAddedPayload struct {
	NoteID  int64 `json:"note_id"`
	OrderID int64 `json:"order_id"`
	ActorID int64 `json:"actor_id"`
}

// CommentCreatedPayload is the legacy shape of the same announcement.
// The comment ID is the note ID; the post ID is the order ID.
type CommentCreatedPayload struct {
	CommentID   int64  `json:"comment_id"`
	PostID      int64  `json:"post_id"`
	CommentType string `json:"comment_type"`
	AuthorID    int64  `json:"author_id"`
}

// AlertSentPayload reports the outcome of one immediate alert.
type AlertSentPayload struct {
	NoteID     int64     `json:"note_id"`
	OrderID    int64     `json:"order_id"`
	Recipients int       `json:"recipients"`
	SentAt     time.Time `json:"sent_at"`
}

// DigestSentPayload reports the outcome of one daily digest run.
type DigestSentPayload struct {
	OrderCount int       `json:"order_count"`
	Recipients int       `json:"recipients"`
	SentAt     time.Time `json:"sent_at"`
}
