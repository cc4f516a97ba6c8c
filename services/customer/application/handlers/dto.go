package handlers

import "github.com/ghuser/ordersvc/services/customer/domain/models"

// CustomerRequest is the request body for POST and PUT /clientes.
type CustomerRequest struct {
	Name  string `json:"nome"  validate:"required,max=100" example:"Ana Souza"`
	Email string `json:"email" validate:"required,email,max=255" example:"ana@example.com"`
	VIP   bool   `json:"vip"   example:"true"`
} // @name CustomerRequest

func (r *CustomerRequest) toModel() *models.Customer {
	return models.NewCustomer(r.Name, r.Email, r.VIP)
}

// CustomerResponse is the JSON representation of a customer.
type CustomerResponse struct {
	ID    int64  `json:"id"    example:"1"`
	Name  string `json:"nome"  example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
	VIP   bool   `json:"vip"   example:"true"`
} // @name CustomerResponse

func toResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, VIP: c.VIP}
}
