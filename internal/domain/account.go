package domain

// Account is the domain model for a registered storefront customer.
// The JSON tags match the persisted directory blob layout, so accounts
// written by earlier versions of the store remain readable.
type Account struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	History  []Order `json:"history"`
}
