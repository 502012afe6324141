package payroll

import "math"

const (
	StatusGenerated = "generated"
	StatusApproved  = "approved"
	StatusPaid      = "paid"

	Currency = "KES"
)

// TaxBracket is one marginal PAYE band. Width of a bounded band is
// Upper-Lower+1, matching the statutory tables the amounts were lifted
// from.
type TaxBracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// HealthTier maps a gross-salary band to a flat NHIF contribution.
type HealthTier struct {
	Upper  float64
	Amount float64
}

var TaxBrackets = []TaxBracket{
	{0, 24000, 0.10},
	{24001, 32333, 0.25},
	{32334, 500000, 0.30},
	{500001, 800000, 0.325},
	{800001, math.Inf(1), 0.35},
}

// HealthTiers must cover [0, inf): the final tier is unbounded so any
// gross above the table still resolves to the top amount.
var HealthTiers = []HealthTier{
	{5999, 150},
	{7999, 300},
	{11999, 400},
	{14999, 500},
	{19999, 600},
	{24999, 750},
	{29999, 850},
	{34999, 900},
	{39999, 950},
	{44999, 1000},
	{49999, 1100},
	{59999, 1200},
	{69999, 1300},
	{79999, 1400},
	{89999, 1500},
	{99999, 1600},
	{math.Inf(1), 1700},
}

const (
	PensionRate    = 0.06
	PensionableCap = 18000
)
