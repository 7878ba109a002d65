package domain

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipVIP     MembershipType = "vip"
)

// MembershipTypes in catalogue order.
var MembershipTypes = []MembershipType{MembershipBasic, MembershipPremium, MembershipVIP}

// Durations are the plan lengths on offer, in months.
var Durations = []int{1, 3, 6, 12}

var monthlyPrices = map[MembershipType]int64{
	MembershipBasic:   150_000,
	MembershipPremium: 250_000,
	MembershipVIP:     400_000,
}

var discountPercent = map[int]int64{
	1:  0,
	3:  5,
	6:  10,
	12: 15,
}

func (t MembershipType) Valid() bool {
	_, ok := monthlyPrices[t]
	return ok
}

// MonthlyPrice is the undiscounted price of one month.
func (t MembershipType) MonthlyPrice() int64 {
	return monthlyPrices[t]
}

func ValidDuration(months int) bool {
	_, ok := discountPercent[months]
	return ok
}

// DiscountPercent returns the discount applied to a plan of months length.
func DiscountPercent(months int) int64 {
	return discountPercent[months]
}

// QuotePrice returns the total price of a plan, rounded down. The caller must
// have checked the type and duration.
func QuotePrice(t MembershipType, months int) int64 {
	gross := t.MonthlyPrice() * int64(months)
	return gross * (100 - DiscountPercent(months)) / 100
}
