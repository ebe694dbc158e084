// Package account defines the account-book transaction record.
package account

import "github.com/bagworks/backend/internal/validate"

// Transaction directions.
var Types = []string{"incoming", "outgoing"}

// Transaction is the API shape of a stored account transaction. The amount
// is persisted as an arbitrary-precision decimal and surfaces as a float.
type Transaction struct {
	TxnID       string   `json:"txnId"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	PartyName   *string  `json:"partyName"`
	Date        *string  `json:"date"`
	Amount      *float64 `json:"amount"`
}

// CreatePayload is the create request body. The transaction ID is optional;
// when omitted the store assigns a TXN- key with a random suffix.
type CreatePayload struct {
	TxnID       *string `json:"txnId"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	PartyName   string  `json:"partyName"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

// UpdatePayload is the full-replace update body.
type UpdatePayload struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	PartyName   string  `json:"partyName"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

// Validate applies the transaction rule table.
func (p *CreatePayload) Validate() error {
	var errs validate.Errors
	validate.Optional(&errs, "txnId", &p.TxnID, validate.MaxLen(40))
	validateFields(&errs, &p.Type, &p.Description, &p.PartyName, &p.Date, p.Amount)
	return errs.Err()
}

// Validate applies the transaction rule table.
func (p *UpdatePayload) Validate() error {
	var errs validate.Errors
	validateFields(&errs, &p.Type, &p.Description, &p.PartyName, &p.Date, p.Amount)
	return errs.Err()
}

func validateFields(errs *validate.Errors, typ, description, partyName, date *string, amount float64) {
	validate.Required(errs, "type", typ, validate.OneOf(Types...))
	validate.Required(errs, "description", description, validate.MinLen(1), validate.MaxLen(500))
	validate.Required(errs, "partyName", partyName, validate.MinLen(2), validate.MaxLen(100))
	validate.Required(errs, "date", date, validate.Date())
	validate.Number(errs, "amount", amount, validate.Positive(10000000), validate.Currency())
}
