package company

import "time"

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}
