package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/store"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

func newLedger(t *testing.T) (*Ledger, *directory.Directory) {
	t.Helper()
	dir := directory.New(store.NewMemoryStore())
	_, err := dir.Register(context.Background(), "Dave", "dave@mail.com", "pw1")
	require.NoError(t, err)
	return New(dir), dir
}

func order(name string) domain.Order {
	return domain.Order{
		CustomerName: "Dave",
		Email:        "dave@mail.com",
		OrderName:    name,
		Amount:       "500",
		Date:         "1/2/2026, 3:04:05 PM",
	}
}

func TestAppendGrowsHistoryInOrder(t *testing.T) {
	ctx := context.Background()
	led, _ := newLedger(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, led.Append(ctx, "dave@mail.com", order(fmt.Sprintf("order-%d", i))))

		history, err := led.ListFor(ctx, "dave@mail.com")
		require.NoError(t, err)
		require.Len(t, history, i)
		assert.Equal(t, fmt.Sprintf("order-%d", i), history[len(history)-1].OrderName)
	}

	// earlier entries survive later appends
	history, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "order-1", history[0].OrderName)
	assert.Equal(t, "order-2", history[1].OrderName)
}

func TestAppendUnknownAccount(t *testing.T) {
	led, _ := newLedger(t)
	err := led.Append(context.Background(), "ghost@mail.com", order("x"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestListForMissingAccountIsEmpty(t *testing.T) {
	led, _ := newLedger(t)
	history, err := led.ListFor(context.Background(), "ghost@mail.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestListForIsIdempotent(t *testing.T) {
	ctx := context.Background()
	led, _ := newLedger(t)
	require.NoError(t, led.Append(ctx, "dave@mail.com", order("a")))

	first, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	second, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListForReturnsCopy(t *testing.T) {
	ctx := context.Background()
	led, _ := newLedger(t)
	require.NoError(t, led.Append(ctx, "dave@mail.com", order("a")))

	history, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	history[0].OrderName = "tampered"

	fresh, err := led.ListFor(ctx, "dave@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "a", fresh[0].OrderName)
}
