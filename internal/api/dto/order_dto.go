package dto

// CheckoutRequest payload. Amount is free text; it is stored as typed.
type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FFID         string `json:"ffid"`
	OrderName    string `json:"order_name"`
	Phone        string `json:"phone"`
	Amount       string `json:"amount"`
}

// OrderResponse is the public view of an order. The stored confirmation
// password copy is never echoed back.
type OrderResponse struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	FFID            string `json:"ffid"`
	OrderName       string `json:"order_name"`
	Phone           string `json:"phone"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Date            string `json:"date"`
}

// CheckoutResponse bundles the stored order with its receipt hand-off.
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	Receipt     string        `json:"receipt"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// SelectServiceRequest payload.
type SelectServiceRequest struct {
	Service string `json:"service"`
}

// PrefillResponse carries checkout pre-fill values.
type PrefillResponse struct {
	Email     string `json:"email"`
	OrderName string `json:"order_name"`
}
