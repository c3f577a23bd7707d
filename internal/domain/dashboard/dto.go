package dashboard

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	TotalEmployees       int             `json:"total_employees"`
	FullTimeCount        int             `json:"full_time_count"`
	PartTimeCount        int             `json:"part_time_count"`
	BenefitsEligible     int             `json:"benefits_eligible"`
	EstimatedMonthlyCost decimal.Decimal `json:"estimated_monthly_cost"`
}
