package role

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role describes a job position with its salary band. The band invariant
// (MinSalary <= MaxSalary) is enforced at request validation; every Role
// loaded from storage is assumed to satisfy it.
type Role struct {
	ID               string
	Title            string
	Description      string
	Department       string
	Level            int
	MinSalary        decimal.Decimal
	MaxSalary        decimal.Decimal
	Responsibilities []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsSalaryInRange reports whether candidate falls inside the salary band,
// inclusive at both ends.
func (r *Role) IsSalaryInRange(candidate decimal.Decimal) bool {
	return candidate.GreaterThanOrEqual(r.MinSalary) && candidate.LessThanOrEqual(r.MaxSalary)
}

// AddResponsibility appends item unless an identical entry already exists.
// Matching is case-sensitive.
func (r *Role) AddResponsibility(item string) {
	for _, existing := range r.Responsibilities {
		if existing == item {
			return
		}
	}
	r.Responsibilities = append(r.Responsibilities, item)
}

// RemoveResponsibility removes the first exact match of item, if any.
func (r *Role) RemoveResponsibility(item string) {
	for i, existing := range r.Responsibilities {
		if existing == item {
			r.Responsibilities = append(r.Responsibilities[:i], r.Responsibilities[i+1:]...)
			return
		}
	}
}

// ResponsibilityList returns a copy of the responsibility list so callers
// cannot mutate internal state through the returned slice.
func (r *Role) ResponsibilityList() []string {
	out := make([]string, len(r.Responsibilities))
	copy(out, r.Responsibilities)
	return out
}
