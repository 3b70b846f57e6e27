package partner

import (
	"strings"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Seller is a reselling partner who creates orders and receives invoices
type Seller struct {
	shared.TenantAggregateRoot
	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`
	Email    string `gorm:"index" json:"email"`
	Address  string `json:"address"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func NewSeller(tenantID uuid.UUID, name, phone, email, address string) (*Seller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SELLER_NAME", "Seller name is required")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID is required")
	}

	return &Seller{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               strings.TrimSpace(phone),
		Email:               strings.ToLower(strings.TrimSpace(email)),
		Address:             strings.TrimSpace(address),
		IsActive:            true,
	}, nil
}

// Update replaces the seller's contact fields
func (s *Seller) Update(name, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SELLER_NAME", "Seller name is required")
	}
	s.Name = name
	s.Phone = strings.TrimSpace(phone)
	s.Email = strings.ToLower(strings.TrimSpace(email))
	s.Address = strings.TrimSpace(address)
	return nil
}

func (s *Seller) Activate() {
	s.IsActive = true
}

func (s *Seller) Deactivate() {
	s.IsActive = false
}

func (Seller) TableName() string {
	return "sellers"
}
