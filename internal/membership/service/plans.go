package service

import (
	"fmt"

	"github.com/lubana/membership/internal/membership/domain"
)

// PlanOption is one purchasable combination of membership type and length.
type PlanOption struct {
	MembershipType  domain.MembershipType
	DurationMonths  int
	MonthlyPrice    int64
	DiscountPercent int64
	Price           int64
}

// Catalogue lists every plan option in display order.
func Catalogue() []PlanOption {
	out := make([]PlanOption, 0, len(domain.MembershipTypes)*len(domain.Durations))
	for _, t := range domain.MembershipTypes {
		for _, months := range domain.Durations {
			out = append(out, PlanOption{
				MembershipType:  t,
				DurationMonths:  months,
				MonthlyPrice:    t.MonthlyPrice(),
				DiscountPercent: domain.DiscountPercent(months),
				Price:           domain.QuotePrice(t, months),
			})
		}
	}
	return out
}

// Quote prices a plan, applying the duration discount.
func Quote(t domain.MembershipType, months int) (int64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: unknown membership type %q", ErrInvalidPlan, t)
	}
	if !domain.ValidDuration(months) {
		return 0, fmt.Errorf("%w: duration must be 1, 3, 6 or 12 months, got %d", ErrInvalidPlan, months)
	}
	return domain.QuotePrice(t, months), nil
}
