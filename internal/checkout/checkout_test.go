package checkout

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/ledger"
	"github.com/spec-kit/storefront-service/internal/store"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func fields() FormFields {
	return FormFields{
		CustomerName: "Dave",
		Email:        "dave@mail.com",
		Password:     "pw1",
		FFID:         "dave123",
		OrderName:    "100 Gems",
		Phone:        "0771234567",
		Amount:       "500",
	}
}

func newIntake(t *testing.T) (*Intake, *ledger.Ledger, *recordingDispatcher) {
	t.Helper()
	dir := directory.New(store.NewMemoryStore())
	_, err := dir.Register(context.Background(), "Dave", "dave@mail.com", "pw1")
	require.NoError(t, err)

	led := ledger.New(dir)
	dispatcher := &recordingDispatcher{}
	fixed := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	intake := NewIntake(dir, led, dispatcher).WithClock(func() time.Time { return fixed })
	return intake, led, dispatcher
}

func TestSubmitWithoutSession(t *testing.T) {
	intake, _, _ := newIntake(t)

	_, _, err := intake.Submit(context.Background(), "", fields())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotLoggedIn))

	_, _, err = intake.Submit(context.Background(), "   ", fields())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotLoggedIn))
}

func TestSubmitSessionWithoutAccount(t *testing.T) {
	intake, _, _ := newIntake(t)
	_, _, err := intake.Submit(context.Background(), "ghost@mail.com", fields())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotLoggedIn))
}

func TestSubmitEmailMismatch(t *testing.T) {
	intake, led, _ := newIntake(t)
	ctx := context.Background()

	f := fields()
	f.Email = "b@x.com"
	_, _, err := intake.Submit(ctx, "dave@mail.com", f)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeEmailMismatch))

	// validation failure leaves the ledger untouched
	history, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSubmitSuccess(t *testing.T) {
	intake, led, dispatcher := newIntake(t)
	ctx := context.Background()

	order, receipt, err := intake.Submit(ctx, "dave@mail.com", fields())
	require.NoError(t, err)

	assert.Equal(t, "500", order.Amount)
	assert.Equal(t, "1/2/2026, 3:04:05 PM", order.Date)
	assert.Equal(t, "dave@mail.com", order.Email)
	assert.Contains(t, receipt, "💰 Amount: LKR 500")
	assert.Contains(t, receipt, "📦 Order: 100 Gems")

	history, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, *order, history[0])

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, events.EventOrderPlaced, dispatcher.events[0].Type)
	payload, ok := dispatcher.events[0].Payload.(events.OrderPlacedPayload)
	require.True(t, ok)
	assert.Equal(t, receipt, payload.Receipt)
}

func TestSubmitNormalizesAndTrims(t *testing.T) {
	intake, _, _ := newIntake(t)

	f := fields()
	f.Email = "  DAVE@MAIL.COM "
	f.CustomerName = "  Dave  "
	f.Amount = " 500 "
	order, _, err := intake.Submit(context.Background(), " Dave@Mail.com ", f)
	require.NoError(t, err)
	assert.Equal(t, "dave@mail.com", order.Email)
	assert.Equal(t, "Dave", order.CustomerName)
	assert.Equal(t, "500", order.Amount)
}

func TestSubmitStoresAmountVerbatim(t *testing.T) {
	intake, led, _ := newIntake(t)

	f := fields()
	f.Amount = "not-a-number"
	order, receipt, err := intake.Submit(context.Background(), "dave@mail.com", f)
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", order.Amount)
	assert.True(t, strings.Contains(receipt, "💰 Amount: not-a-number LKR"))

	history, err := led.ListFor(context.Background(), "dave@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", history[0].Amount)
}
