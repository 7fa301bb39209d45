package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	mqcontracts "github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/contracts/mq"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/config"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/mailer"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
)

type digestFixture struct {
	service   *DigestService
	orders    *fakeOrderStore
	notes     *fakeNoteStore
	mail      *fakeMailer
	publisher *fakePublisher
}

func newDigestFixture(cfg config.NotificationConfig, orders *fakeOrderStore, notes *fakeNoteStore) *digestFixture {
	f := &digestFixture{
		orders:    orders,
		notes:     notes,
		mail:      &fakeMailer{},
		publisher: &fakePublisher{},
	}

	log := zap.NewNop()
	recipients := NewRecipientResolver(cfg, &fakeAdmins{}, log)
	f.service = NewDigestService(
		f.orders, f.notes, recipients,
		mailer.NewRenderer("https://shop.example.com/wp-admin"),
		f.mail, f.publisher, log,
	)
	return f
}

func digestOrder(id int64, number, status string) model.Order {
	return model.Order{
		ID:               id,
		Number:           number,
		Status:           status,
		Total:            25.00,
		BillingFirstName: "Ada",
		BillingLastName:  "Lovelace",
		BillingEmail:     "ada@example.com",
		CreatedAt:        time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestDigestRunSends(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderStore{byStatus: map[string][]model.Order{
		"processing":        {digestOrder(100, "100", "processing")},
		"partially-shipped": {digestOrder(200, "200", "partially-shipped")},
	}}
	notes := &fakeNoteStore{byOrder: map[int64][]model.OrderNote{
		100: {{ID: 1, OrderID: 100, Content: mixedNoteContent("A"), Author: "System"}},
		200: {{ID: 2, OrderID: 200, Content: mixedNoteContent("B"), Author: "System"}},
	}}
	f := newDigestFixture(config.NotificationConfig{Recipients: []string{"ops@example.com"}}, orders, notes)

	if err := f.service.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(f.mail.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(f.mail.sent))
	}
	got := f.mail.sent[0]
	if got.fromName != mailer.DigestFromName {
		t.Fatalf("fromName = %q, want %q", got.fromName, mailer.DigestFromName)
	}
	if got.subject != mailer.DigestSubject(2) {
		t.Fatalf("subject = %q", got.subject)
	}
	if !strings.Contains(got.body, "#100") || !strings.Contains(got.body, "#200") {
		t.Fatal("body missing order rows")
	}

	if len(f.publisher.events) != 1 || f.publisher.events[0].routingKey != mqcontracts.RoutingKeyDigestSent {
		t.Fatalf("unexpected outcome events: %v", f.publisher.events)
	}
}

func TestDigestRunEmptyIsSilent(t *testing.T) {
	t.Parallel()

	// Orders exist but none carries a strictly mixed note.
	orders := &fakeOrderStore{byStatus: map[string][]model.Order{
		"processing": {digestOrder(100, "100", "processing")},
	}}
	notes := &fakeNoteStore{byOrder: map[int64][]model.OrderNote{
		100: {{ID: 1, OrderID: 100, Content: "Walsworth processed: Qty 2 of [Widget]", Author: "System"}},
	}}
	f := newDigestFixture(config.NotificationConfig{Recipients: []string{"ops@example.com"}}, orders, notes)

	if err := f.service.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(f.mail.sent) != 0 {
		t.Fatalf("expected no email, got %d", len(f.mail.sent))
	}
	if len(f.publisher.events) != 0 {
		t.Fatal("empty run must not publish an outcome event")
	}
}

func TestDigestUsesNewestMixedNote(t *testing.T) {
	t.Parallel()

	// Notes arrive newest first; the digest must take the first strict
	// match and ignore the older mixed note.
	orders := &fakeOrderStore{byStatus: map[string][]model.Order{
		"processing": {digestOrder(100, "100", "processing")},
	}}
	notes := &fakeNoteStore{byOrder: map[int64][]model.OrderNote{
		100: {
			{ID: 3, OrderID: 100, Content: "Customer called about delivery.", Author: "Jo"},
			{ID: 2, OrderID: 100, Content: mixedNoteContent("NEW"), Author: "System"},
			{ID: 1, OrderID: 100, Content: mixedNoteContent("OLD"), Author: "System"},
		},
	}}
	f := newDigestFixture(config.NotificationConfig{Recipients: []string{"ops@example.com"}}, orders, notes)

	if err := f.service.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(f.mail.sent))
	}
	body := f.mail.sent[0].body
	if !strings.Contains(body, "Book NEW") {
		t.Fatal("body missing items from the newest mixed note")
	}
	if strings.Contains(body, "Book OLD") {
		t.Fatal("body must not include the older mixed note")
	}
}

func TestDigestNoteFailureDropsOneOrder(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderStore{byStatus: map[string][]model.Order{
		"processing": {
			digestOrder(100, "100", "processing"),
			digestOrder(200, "200", "processing"),
		},
	}}
	notes := &fakeNoteStore{
		byOrder: map[int64][]model.OrderNote{
			200: {{ID: 2, OrderID: 200, Content: mixedNoteContent("B"), Author: "System"}},
		},
		listErr: map[int64]error{100: errStoreDown},
	}
	f := newDigestFixture(config.NotificationConfig{Recipients: []string{"ops@example.com"}}, orders, notes)

	if err := f.service.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(f.mail.sent))
	}
	if f.mail.sent[0].subject != mailer.DigestSubject(1) {
		t.Fatalf("subject = %q, want one-order digest", f.mail.sent[0].subject)
	}
}

func TestDigestOrderListFailure(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderStore{listErr: errStoreDown}
	f := newDigestFixture(config.NotificationConfig{Recipients: []string{"ops@example.com"}}, orders, &fakeNoteStore{})

	if err := f.service.Run(context.Background()); err == nil {
		t.Fatal("expected error when the order listing fails")
	}
	if len(f.mail.sent) != 0 {
		t.Fatal("failed run must not send")
	}
}

func TestDigestNoRecipients(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderStore{byStatus: map[string][]model.Order{
		"processing": {digestOrder(100, "100", "processing")},
	}}
	notes := &fakeNoteStore{byOrder: map[int64][]model.OrderNote{
		100: {{ID: 1, OrderID: 100, Content: mixedNoteContent("A"), Author: "System"}},
	}}
	f := newDigestFixture(config.NotificationConfig{}, orders, notes)

	if err := f.service.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(f.mail.sent) != 0 {
		t.Fatal("no recipients means no send")
	}
}
