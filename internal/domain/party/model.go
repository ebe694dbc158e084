// Package party defines the customer party record. A party may carry soft
// references to an agent and an order; they are stored by value and never
// checked against the referenced collections.
package party

import "github.com/bagworks/backend/internal/validate"

// Party is the API shape of a stored party.
type Party struct {
	PartyID            int     `json:"partyId"`
	PartyName          string  `json:"partyName"`
	AliasOrCompanyName *string `json:"aliasOrCompanyName"`
	Address            *string `json:"address"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Pincode            *string `json:"pincode"`
	AgentID            *int    `json:"agentId"`
	ContactPerson1     *string `json:"contact_Person1"`
	ContactPerson2     *string `json:"contact_Person2"`
	Email              *string `json:"email"`
	Mobile1            *string `json:"mobile1"`
	Mobile2            *string `json:"mobile2"`
	OrderID            *string `json:"orderId"`
}

// Payload is the create/update request body; both operations share the same
// rule table.
type Payload struct {
	PartyName          string  `json:"partyName"`
	AliasOrCompanyName *string `json:"aliasOrCompanyName"`
	Address            *string `json:"address"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Pincode            *string `json:"pincode"`
	AgentID            *int    `json:"agentId"`
	ContactPerson1     *string `json:"contact_Person1"`
	ContactPerson2     *string `json:"contact_Person2"`
	Email              *string `json:"email"`
	Mobile1            *string `json:"mobile1"`
	Mobile2            *string `json:"mobile2"`
	OrderID            *string `json:"orderId"`
}

// Validate applies the party rule table.
func (p *Payload) Validate() error {
	var errs validate.Errors
	validate.Required(&errs, "partyName", &p.PartyName, validate.MinLen(2), validate.MaxLen(100))
	validate.Optional(&errs, "aliasOrCompanyName", &p.AliasOrCompanyName, validate.MaxLen(100))
	validate.Optional(&errs, "address", &p.Address, validate.MinLen(2), validate.MaxLen(200))
	validate.Optional(&errs, "city", &p.City, validate.MaxLen(60), validate.Name())
	validate.Optional(&errs, "state", &p.State, validate.MaxLen(60), validate.Name())
	validate.Optional(&errs, "pincode", &p.Pincode, validate.Digits(6))
	validate.OptionalInt(&errs, "agentId", p.AgentID, validate.NonNegative(1000000))
	validate.Optional(&errs, "contact_Person1", &p.ContactPerson1, validate.MinLen(2), validate.MaxLen(100), validate.Name())
	validate.Optional(&errs, "contact_Person2", &p.ContactPerson2, validate.MinLen(2), validate.MaxLen(100), validate.Name())
	validate.Optional(&errs, "email", &p.Email, validate.Email())
	validate.Optional(&errs, "mobile1", &p.Mobile1, validate.Mobile())
	validate.Optional(&errs, "mobile2", &p.Mobile2, validate.Mobile())
	validate.Optional(&errs, "orderId", &p.OrderID, validate.MaxLen(40))
	return errs.Err()
}
