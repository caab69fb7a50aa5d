package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// DateLayout renders submission timestamps, e.g. "1/2/2026, 3:04:05 PM".
const DateLayout = "1/2/2006, 3:04:05 PM"

const receiptTemplate = `🧾 *ADS-ABN DIGITAL STORE — Order Bill*
-----------------------------------
👤 Name: %s
📧 Email: %s
🎮 FF ID / Username: %s
📦 Order: %s
📱 Phone: %s
💰 Amount: %s
🕒 Date: %s
-----------------------------------
Thank you!`

var amountPrinter = message.NewPrinter(language.English)

// FormatAmountLKR renders an amount for display. Values that parse as a
// number become "LKR <grouped>"; anything else passes through unchanged
// with a " LKR" suffix.
func FormatAmountLKR(value string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return value + " LKR"
	}
	f, _ := amount.Float64()
	return amountPrinter.Sprintf("LKR %v", number.Decimal(f))
}

// Receipt renders the order bill handed to the messaging boundary.
func Receipt(order domain.Order) string {
	return fmt.Sprintf(receiptTemplate,
		order.CustomerName,
		order.Email,
		order.FFID,
		order.OrderName,
		order.Phone,
		FormatAmountLKR(order.Amount),
		order.Date,
	)
}
