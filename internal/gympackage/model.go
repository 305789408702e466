package gympackage

import "time"

type GymPackage struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationDays int       `json:"duration_days"`
	Price        int64     `json:"price"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePackageRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	DurationDays int      `json:"duration_days" binding:"required,gt=0"`
	Price        int64    `json:"price" binding:"gte=0"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
}

type UpdatePackageRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1"`
	Description  *string   `json:"description"`
	DurationDays *int      `json:"duration_days" binding:"omitempty,gt=0"`
	Price        *int64    `json:"price" binding:"omitempty,gte=0"`
	Features     *[]string `json:"features"`
	IsActive     *bool     `json:"is_active"`
}

func (r UpdatePackageRequest) Apply(p *GymPackage) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.DurationDays != nil {
		p.DurationDays = *r.DurationDays
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Features != nil {
		p.Features = append([]string(nil), (*r.Features)...)
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}
