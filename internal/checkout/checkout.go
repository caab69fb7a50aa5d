// Package checkout validates checkout submissions, assembles orders and
// renders receipts.
package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/ledger"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// FormFields carries the raw checkout form input. Values are trimmed of
// surrounding whitespace before use; amount is otherwise stored verbatim.
type FormFields struct {
	CustomerName string
	Email        string
	Password     string
	FFID         string
	OrderName    string
	Phone        string
	Amount       string
}

// Intake coordinates checkout submissions against the directory and ledger.
type Intake struct {
	directory  *directory.Directory
	ledger     *ledger.Ledger
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewIntake builds the intake. dispatcher may be nil when no listeners exist.
func NewIntake(dir *directory.Directory, led *ledger.Ledger, dispatcher events.Dispatcher) *Intake {
	return &Intake{
		directory:  dir,
		ledger:     led,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func (i *Intake) WithClock(now func() time.Time) *Intake {
	i.now = now
	return i
}

// Submit validates fields against the active session, stamps the order with
// the submission time, appends it to the owner's history and returns the
// order with its rendered receipt. Nothing is written before validation
// passes.
func (i *Intake) Submit(ctx context.Context, sessionEmail string, fields FormFields) (*domain.Order, string, error) {
	if strings.TrimSpace(sessionEmail) == "" {
		return nil, "", apperrors.NewNotLoggedIn()
	}
	sessionEmail = directory.Normalize(sessionEmail)
	if _, err := i.directory.FindByEmail(ctx, sessionEmail); err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, "", apperrors.NewNotLoggedIn()
		}
		return nil, "", err
	}

	email := directory.Normalize(fields.Email)
	if email != sessionEmail {
		return nil, "", apperrors.NewEmailMismatch()
	}

	order := domain.Order{
		CustomerName: strings.TrimSpace(fields.CustomerName),
		Email:        email,
		Password:     strings.TrimSpace(fields.Password),
		FFID:         strings.TrimSpace(fields.FFID),
		OrderName:    strings.TrimSpace(fields.OrderName),
		Phone:        strings.TrimSpace(fields.Phone),
		Amount:       strings.TrimSpace(fields.Amount),
		Date:         i.now().Format(DateLayout),
	}

	if err := i.ledger.Append(ctx, sessionEmail, order); err != nil {
		return nil, "", err
	}

	receipt := Receipt(order)
	i.publishOrderPlaced(ctx, order, receipt)
	return &order, receipt, nil
}

func (i *Intake) publishOrderPlaced(ctx context.Context, order domain.Order, receipt string) {
	if i.dispatcher == nil {
		return
	}
	_ = i.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderPlaced,
		Email:     order.Email,
		Timestamp: i.now(),
		Payload: events.OrderPlacedPayload{
			OrderName: order.OrderName,
			Amount:    order.Amount,
			Phone:     order.Phone,
			Receipt:   receipt,
		},
	})
}
