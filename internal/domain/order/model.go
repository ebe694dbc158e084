// Package order defines the customer order record.
package order

import "github.com/bagworks/backend/internal/validate"

// Order is the API shape of a stored order. Optional fields absent from the
// stored item surface as null.
type Order struct {
	OrderID      string  `json:"orderId"`
	Description  *string `json:"description"`
	CustomerName *string `json:"customerName"`
	OrderDate    *string `json:"orderDate"`
	DeliveryDate *string `json:"deliveryDate"`
}

// CreatePayload is the create request body. The order ID is optional; when
// omitted the store assigns an ORD- key with a random suffix.
type CreatePayload struct {
	OrderID      *string `json:"orderId"`
	Description  string  `json:"description"`
	CustomerName string  `json:"customerName"`
	OrderDate    string  `json:"orderDate"`
	DeliveryDate string  `json:"deliveryDate"`
}

// UpdatePayload is the full-replace update body.
type UpdatePayload struct {
	Description  string `json:"description"`
	CustomerName string `json:"customerName"`
	OrderDate    string `json:"orderDate"`
	DeliveryDate string `json:"deliveryDate"`
}

// Validate applies the order rule table.
func (p *CreatePayload) Validate() error {
	var errs validate.Errors
	validate.Optional(&errs, "orderId", &p.OrderID, validate.MaxLen(40))
	validateFields(&errs, &p.Description, &p.CustomerName, &p.OrderDate, &p.DeliveryDate)
	return errs.Err()
}

// Validate applies the order rule table.
func (p *UpdatePayload) Validate() error {
	var errs validate.Errors
	validateFields(&errs, &p.Description, &p.CustomerName, &p.OrderDate, &p.DeliveryDate)
	return errs.Err()
}

func validateFields(errs *validate.Errors, description, customerName, orderDate, deliveryDate *string) {
	validate.Required(errs, "description", description, validate.MinLen(1), validate.MaxLen(500))
	validate.Required(errs, "customerName", customerName, validate.MinLen(2), validate.MaxLen(100), validate.Name())
	validate.Required(errs, "orderDate", orderDate, validate.Date())
	validate.Required(errs, "deliveryDate", deliveryDate, validate.Date())
}
