// Package agent defines the sales agent record.
package agent

import "github.com/bagworks/backend/internal/validate"

// Agent is the API shape of a stored agent. The identifier is assigned
// sequentially by the store.
type Agent struct {
	AgentID       int     `json:"agentId"`
	Name          *string `json:"name"`
	Mobile        *string `json:"mobile"`
	AadharDetails *string `json:"aadhar_Details"`
	Address       *string `json:"address"`
}

// Lightweight is the reduced projection returned by the lightweight listing.
type Lightweight struct {
	AgentID int     `json:"agentId"`
	Name    *string `json:"name"`
}

// Payload is the create/update request body; both operations share the same
// rule table.
type Payload struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	AadharDetails string `json:"aadhar_Details"`
	Address       string `json:"address"`
}

// Validate applies the agent rule table.
func (p *Payload) Validate() error {
	var errs validate.Errors
	validate.Required(&errs, "name", &p.Name, validate.MinLen(2), validate.MaxLen(100), validate.Name())
	validate.Required(&errs, "mobile", &p.Mobile, validate.Mobile())
	validate.Required(&errs, "aadhar_Details", &p.AadharDetails, validate.Digits(12))
	validate.Required(&errs, "address", &p.Address, validate.MinLen(2), validate.MaxLen(200))
	return errs.Err()
}
