package services

import (
	"fmt"
	"strings"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// packageCatalog is the static registry of package definitions. The catalog
// is seeded in code; the definitions change at deployment time, not at
// runtime, so no storage round-trip is involved.
type packageCatalog struct {
	byID   map[string]domain.PackageDefinition
	byCode map[string]domain.PackageDefinition
	order  []string
}

// NewPackageCatalog creates a catalog holding the given definitions. Inactive
// definitions are resolvable by ID (historic postings may reference them) but
// excluded from List.
func NewPackageCatalog(definitions []domain.PackageDefinition) portssvc.PackageCatalog {
	c := &packageCatalog{
		byID:   make(map[string]domain.PackageDefinition, len(definitions)),
		byCode: make(map[string]domain.PackageDefinition, len(definitions)),
	}
	for _, def := range definitions {
		c.byID[def.PackageID] = def
		c.byCode[strings.ToUpper(def.Code)] = def
		c.order = append(c.order, def.PackageID)
	}
	return c
}

// Ensure packageCatalog implements the PackageCatalog interface
var _ portssvc.PackageCatalog = (*packageCatalog)(nil)

func (c *packageCatalog) FindByID(packageID string) (*domain.PackageDefinition, error) {
	def, ok := c.byID[packageID]
	if !ok {
		return nil, fmt.Errorf("package definition %s: %w", packageID, apperrors.ErrNotFound)
	}
	return &def, nil
}

func (c *packageCatalog) FindByCode(code string) (*domain.PackageDefinition, error) {
	def, ok := c.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("package code %s: %w", code, apperrors.ErrNotFound)
	}
	return &def, nil
}

func (c *packageCatalog) List() []domain.PackageDefinition {
	result := make([]domain.PackageDefinition, 0, len(c.order))
	for _, id := range c.order {
		if def := c.byID[id]; def.Active {
			result = append(result, def)
		}
	}
	return result
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// DefaultPackageDefinitions seeds the standard board-basis catalog. Breakfast
// and dinner are night-audit components; lunch on full board and the
// all-inclusive beverage allowance post on consumption.
func DefaultPackageDefinitions() []domain.PackageDefinition {
	stdTax := dec("18")

	breakfast := domain.PackageComponent{
		ComponentID: "CMP-BRK", Category: "food", Name: "Breakfast",
		RetailValue: dec("25"), CostValue: dec("9"), TaxRate: stdTax, Mandatory: true,
	}
	lunch := domain.PackageComponent{
		ComponentID: "CMP-LUN", Category: "food", Name: "Lunch",
		RetailValue: dec("40"), CostValue: dec("14"), TaxRate: stdTax, Mandatory: false, AllowSubstitution: true,
	}
	dinner := domain.PackageComponent{
		ComponentID: "CMP-DIN", Category: "food", Name: "Dinner",
		RetailValue: dec("50"), CostValue: dec("18"), TaxRate: stdTax, Mandatory: true, AllowSubstitution: true,
	}
	beverages := domain.PackageComponent{
		ComponentID: "CMP-BEV", Category: "beverage", Name: "Beverage Allowance",
		RetailValue: dec("30"), CostValue: dec("8"), TaxRate: stdTax, Mandatory: false,
	}

	nightAudit := func(c domain.PackageComponent, account string) domain.PostingRule {
		return domain.PostingRule{ComponentID: c.ComponentID, PostingTime: domain.PostAtNightAudit, SplitByNights: true, AccountCode: account}
	}
	onConsumption := func(c domain.PackageComponent, account string) domain.PostingRule {
		return domain.PostingRule{ComponentID: c.ComponentID, PostingTime: domain.PostOnConsumption, AccountCode: account}
	}

	return []domain.PackageDefinition{
		{
			PackageID: "PKG-RO", Code: "RO", Name: "Room Only", Type: domain.RoomOnly,
			Active: true,
		},
		{
			PackageID: "PKG-BB", Code: "BB", Name: "Bed & Breakfast", Type: domain.BedBreakfast,
			PricePerPerson: dec("25"), PricePerChild: dec("12.50"), ChildAgeLimit: 12,
			Components:   []domain.PackageComponent{breakfast},
			PostingRules: []domain.PostingRule{nightAudit(breakfast, "4100")},
			Active:       true,
		},
		{
			PackageID: "PKG-HB", Code: "HB", Name: "Half Board", Type: domain.HalfBoard,
			PricePerPerson: dec("75"), PricePerChild: dec("37.50"), ChildAgeLimit: 12,
			Components:   []domain.PackageComponent{breakfast, dinner},
			PostingRules: []domain.PostingRule{nightAudit(breakfast, "4100"), nightAudit(dinner, "4110")},
			Active:       true,
		},
		{
			PackageID: "PKG-FB", Code: "FB", Name: "Full Board", Type: domain.FullBoard,
			PricePerPerson: dec("115"), PricePerChild: dec("57.50"), ChildAgeLimit: 12,
			Components:   []domain.PackageComponent{breakfast, lunch, dinner},
			PostingRules: []domain.PostingRule{nightAudit(breakfast, "4100"), onConsumption(lunch, "4105"), nightAudit(dinner, "4110")},
			Active:       true,
		},
		{
			PackageID: "PKG-AI", Code: "AI", Name: "All-Inclusive", Type: domain.AllInclusive,
			PricePerPerson: dec("145"), PricePerChild: dec("72.50"), ChildAgeLimit: 12,
			Components:   []domain.PackageComponent{breakfast, lunch, dinner, beverages},
			PostingRules: []domain.PostingRule{nightAudit(breakfast, "4100"), onConsumption(lunch, "4105"), nightAudit(dinner, "4110"), onConsumption(beverages, "4200")},
			Active:       true,
		},
	}
}
