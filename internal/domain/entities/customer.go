package entities

import "time"

// Customer is the person a quotation is prepared for.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// FirstQuotation gates the welcome discount. It starts true and is cleared once,
// atomically with the creation of that customer's first quotation.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	FirstQuotation bool      `json:"first_quotation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName joins name and surname, skipping blanks.
func (c Customer) FullName() string {
	switch {
	case c.Name == "":
		return c.Surname
	case c.Surname == "":
		return c.Name
	default:
		return c.Name + " " + c.Surname
	}
}
