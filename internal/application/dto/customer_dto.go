package dto

import "time"

// CreateCustomerRequest alta manual de un cliente.
type CreateCustomerRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
}

// CustomerResponse representación HTTP de un cliente.
type CustomerResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}
