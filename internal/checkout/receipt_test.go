package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/storefront-service/internal/domain"
)

func TestFormatAmountLKR(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain integer", "500", "LKR 500"},
		{"grouped thousands", "150000", "LKR 150,000"},
		{"decimal fraction", "1234.5", "LKR 1,234.5"},
		{"surrounding whitespace", " 500 ", "LKR 500"},
		{"non-numeric passthrough", "five hundred", "five hundred LKR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmountLKR(tt.value))
		})
	}
}

func TestReceiptTemplate(t *testing.T) {
	order := domain.Order{
		CustomerName: "Dave",
		Email:        "dave@mail.com",
		FFID:         "dave123",
		OrderName:    "100 Gems",
		Phone:        "0771234567",
		Amount:       "500",
		Date:         "1/2/2026, 3:04:05 PM",
	}

	want := `🧾 *ADS-ABN DIGITAL STORE — Order Bill*
-----------------------------------
👤 Name: Dave
📧 Email: dave@mail.com
🎮 FF ID / Username: dave123
📦 Order: 100 Gems
📱 Phone: 0771234567
💰 Amount: LKR 500
🕒 Date: 1/2/2026, 3:04:05 PM
-----------------------------------
Thank you!`

	assert.Equal(t, want, Receipt(order))
}
