package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

var partyPattern = regexp.MustCompile(`(?i)^party\s*(\d+)$`)

// NormalizeParty canonicalizes a party grouping tag. "party 3", "PARTY3" and
// "Party 03" all collapse to "Party 3" so grouping never splits on casing.
// Tags that do not look like a party label pass through trimmed.
func NormalizeParty(party string) string {
	trimmed := strings.TrimSpace(party)
	if m := partyPattern.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return fmt.Sprintf("Party %d", n)
		}
	}
	return trimmed
}

// Customer is a khata ledger customer, unrelated to sellers
type Customer struct {
	shared.TenantAggregateRoot
	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
	Party string `gorm:"index" json:"party"`
}

func NewCustomer(tenantID uuid.UUID, name, phone, party string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID is required")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               strings.TrimSpace(phone),
		Party:               NormalizeParty(party),
	}, nil
}

// Update replaces the mutable customer fields, renormalizing the party tag
func (c *Customer) Update(name, phone, party string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	c.Name = name
	c.Phone = strings.TrimSpace(phone)
	c.Party = NormalizeParty(party)
	return nil
}

func (Customer) TableName() string {
	return "ledger_customers"
}
