package domain

// Order captures one checkout submission. Orders are immutable once
// appended to an account's history and are never deleted individually.
//
// Amount keeps the raw string the customer typed; currency rendering is a
// read-time concern. Date is the formatted submission timestamp, stamped
// server-side at intake.
type Order struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FFID         string `json:"ffid"`
	OrderName    string `json:"orderName"`
	Phone        string `json:"phone"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
}
