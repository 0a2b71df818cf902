package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageType identifies the board basis of a package.
type PackageType string

const (
	RoomOnly     PackageType = "RO"
	BedBreakfast PackageType = "BB"
	HalfBoard    PackageType = "HB"
	FullBoard    PackageType = "FB"
	AllInclusive PackageType = "AI"
)

// PostingTime says when a package component is charged to the folio.
type PostingTime string

const (
	PostAtNightAudit  PostingTime = "NIGHT_AUDIT"
	PostOnConsumption PostingTime = "CONSUMPTION"
	PostAtCheckOut    PostingTime = "CHECK_OUT"
)

// PackageComponent is one priced service inside a package definition.
// RetailValue is the per-adult, per-night net price; tax is added on top at
// posting time (package prices are genuinely net, unlike posted revenue which
// is treated as tax-inclusive by reporting).
type PackageComponent struct {
	ComponentID       string          `json:"componentID"`
	Category          string          `json:"category"` // food, beverage, spa, ...
	Name              string          `json:"name"`
	RetailValue       decimal.Decimal `json:"retailValue"`
	CostValue         decimal.Decimal `json:"costValue"`
	TaxRate           decimal.Decimal `json:"taxRate"` // Percentage, e.g. 18
	Mandatory         bool            `json:"mandatory"`
	AllowSubstitution bool            `json:"allowSubstitution"`
	MaxQuantity       *int            `json:"maxQuantity,omitempty"`
}

// PostingRule binds a component to the moment it is charged.
type PostingRule struct {
	ComponentID   string      `json:"componentID"`
	PostingTime   PostingTime `json:"postingTime"`
	SplitByNights bool        `json:"splitByNights"`
	AccountCode   string      `json:"accountCode"`
}

// PackageDefinition is a static catalog entry describing a bundled set of
// recurring services attached to a reservation.
type PackageDefinition struct {
	PackageID      string             `json:"packageID"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	Type           PackageType        `json:"type"`
	PricePerPerson decimal.Decimal    `json:"pricePerPerson"`
	PricePerChild  decimal.Decimal    `json:"pricePerChild"`
	ChildAgeLimit  int                `json:"childAgeLimit"`
	Components     []PackageComponent `json:"components"`
	PostingRules   []PostingRule      `json:"postingRules"`
	Active         bool               `json:"active"`
}

// RuleFor returns the posting rule bound to the given component, if any.
func (p *PackageDefinition) RuleFor(componentID string) (PostingRule, bool) {
	for _, rule := range p.PostingRules {
		if rule.ComponentID == componentID {
			return rule, true
		}
	}
	return PostingRule{}, false
}

// PackageConsumption records an on-consumption component usage against a
// reservation package (restaurant, spa and similar outlets report these).
type PackageConsumption struct {
	ComponentID string          `json:"componentID"`
	Date        time.Time       `json:"date"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReservationPackage assigns a package to a reservation. PostedDates is the
// idempotency ledger for night-audit posting: a date is added only after the
// corresponding transactions were successfully appended to the folio, and it
// never contains duplicates.
type ReservationPackage struct {
	ReservationID string               `json:"reservationID"`
	PropertyID    string               `json:"propertyID"`
	PackageID     string               `json:"packageID"`
	Adults        int                  `json:"adults"`
	Children      int                  `json:"children"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	PostedDates   []string             `json:"postedDates"` // YYYY-MM-DD, no duplicates
	Consumptions  []PackageConsumption `json:"consumptions,omitempty"`
	AuditFields
}

// HasPostedDate reports whether the package was already charged for the date.
func (rp *ReservationPackage) HasPostedDate(date time.Time) bool {
	key := date.Format(DateLayout)
	for _, d := range rp.PostedDates {
		if d == key {
			return true
		}
	}
	return false
}

// MarkPosted appends the date to the posted ledger if not already present.
func (rp *ReservationPackage) MarkPosted(date time.Time) {
	if rp.HasPostedDate(date) {
		return
	}
	rp.PostedDates = append(rp.PostedDates, date.Format(DateLayout))
}
