package role

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func bandRole(min, max string) Role {
	return Role{
		ID:        "0198a1f0-0000-7000-8000-000000000001",
		Title:     "Software Engineer",
		MinSalary: decimal.RequireFromString(min),
		MaxSalary: decimal.RequireFromString(max),
	}
}

func TestRole_IsSalaryInRange_BoundariesInclusive(t *testing.T) {
	t.Parallel()
	r := bandRole("50000", "90000")

	assert.True(t, r.IsSalaryInRange(decimal.RequireFromString("50000")))
	assert.True(t, r.IsSalaryInRange(decimal.RequireFromString("90000")))
	assert.True(t, r.IsSalaryInRange(decimal.RequireFromString("70000")))
}

func TestRole_IsSalaryInRange_OutsideBand(t *testing.T) {
	t.Parallel()
	r := bandRole("50000", "90000")

	assert.False(t, r.IsSalaryInRange(decimal.RequireFromString("49999.99")))
	assert.False(t, r.IsSalaryInRange(decimal.RequireFromString("90000.01")))
	assert.False(t, r.IsSalaryInRange(decimal.RequireFromString("-1")))
}

func TestRole_IsSalaryInRange_DegenerateBand(t *testing.T) {
	t.Parallel()
	r := bandRole("60000", "60000")

	assert.True(t, r.IsSalaryInRange(decimal.RequireFromString("60000")))
	assert.False(t, r.IsSalaryInRange(decimal.RequireFromString("60000.01")))
}

func TestRole_AddResponsibility_DeduplicatesExactMatch(t *testing.T) {
	t.Parallel()
	r := bandRole("50000", "90000")

	r.AddResponsibility("Code review")
	r.AddResponsibility("On-call rotation")
	r.AddResponsibility("Code review")

	assert.Equal(t, []string{"Code review", "On-call rotation"}, r.Responsibilities)

	// Dedup is case-sensitive: different casing is a different entry.
	r.AddResponsibility("code review")
	assert.Len(t, r.Responsibilities, 3)
}

func TestRole_RemoveResponsibility(t *testing.T) {
	t.Parallel()
	r := bandRole("50000", "90000")
	r.Responsibilities = []string{"Code review", "On-call rotation", "Mentoring"}

	r.RemoveResponsibility("On-call rotation")
	assert.Equal(t, []string{"Code review", "Mentoring"}, r.Responsibilities)

	// Removing an absent entry is a no-op.
	r.RemoveResponsibility("Hiring")
	assert.Equal(t, []string{"Code review", "Mentoring"}, r.Responsibilities)
}

func TestRole_ResponsibilityList_ReturnsCopy(t *testing.T) {
	t.Parallel()
	r := bandRole("50000", "90000")
	r.Responsibilities = []string{"Code review", "Mentoring"}

	got := r.ResponsibilityList()
	got[0] = "mutated"

	assert.Equal(t, []string{"Code review", "Mentoring"}, r.ResponsibilityList())
}
