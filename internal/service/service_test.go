package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
)

// Shared fakes for the pipeline tests.

type fakeOrderStore struct {
	orders   map[int64]*model.Order
	byStatus map[string][]model.Order
	listErr  error
}

func (f *fakeOrderStore) FindByID(_ context.Context, id int64) (*model.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderStore) ListByStatuses(_ context.Context, statuses []string) ([]model.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Order
	for _, s := range statuses {
		out = append(out, f.byStatus[s]...)
	}
	return out, nil
}

type fakeNoteStore struct {
	notes   map[int64]*model.OrderNote
	byOrder map[int64][]model.OrderNote
	listErr map[int64]error
}

func (f *fakeNoteStore) FindByID(_ context.Context, id int64) (*model.OrderNote, error) {
	return f.notes[id], nil
}

func (f *fakeNoteStore) ListByOrderDesc(_ context.Context, orderID int64) ([]model.OrderNote, error) {
	if err := f.listErr[orderID]; err != nil {
		return nil, err
	}
	return f.byOrder[orderID], nil
}

type fakeAdmins struct {
	emails []string
	err    error
}

func (f *fakeAdmins) ListAdminEmails(context.Context) ([]string, error) {
	return f.emails, f.err
}

type sentMail struct {
	fromName   string
	recipients []string
	subject    string
	body       string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(fromName string, recipients []string, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{fromName: fromName, recipients: recipients, subject: subject, body: body})
	return nil
}

type fakeNotices struct {
	mu       sync.Mutex
	messages map[int64][]string
}

func newFakeNotices() *fakeNotices {
	return &fakeNotices{messages: make(map[int64][]string)}
}

func (f *fakeNotices) Set(_ context.Context, userID int64, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[userID] = append(f.messages[userID], message)
}

func (f *fakeNotices) last(userID int64) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.messages[userID]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) Publish(routingKey string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

var errStoreDown = errors.New("store down")

func mixedNoteContent(orderTag string) string {
	return fmt.Sprintf(
		"At 2024-01-05 10:00:00 GMT. Walsworth processed: Qty 3 of [Book %s]. Walsworth DID NOT process: Qty 1 of [Pamphlet %s].",
		orderTag, orderTag,
	)
}
