package payroll

import "math"

// Deductions holds the three statutory amounts computed from one gross
// salary figure.
type Deductions struct {
	Tax     float64
	Health  float64
	Pension float64
}

func (d Deductions) Total() float64 {
	return d.Tax + d.Health + d.Pension
}

// CalculateTax walks the marginal brackets in ascending order, taxing
// the slice of income inside each band at that band's rate.
func CalculateTax(gross float64) float64 {
	tax := 0.0
	remaining := gross

	for _, bracket := range TaxBrackets {
		if remaining <= 0 {
			break
		}
		amount := remaining
		if !math.IsInf(bracket.Upper, 1) {
			amount = math.Min(bracket.Upper-bracket.Lower+1, remaining)
		}
		tax += amount * bracket.Rate
		remaining -= amount
	}

	return round2(tax)
}

// CalculateHealth returns the flat contribution of the first tier whose
// upper bound covers gross. The final tier is unbounded, so the lookup
// is total over [0, inf).
func CalculateHealth(gross float64) float64 {
	for _, tier := range HealthTiers {
		if gross <= tier.Upper {
			return tier.Amount
		}
	}
	return HealthTiers[len(HealthTiers)-1].Amount
}

// CalculatePension applies the flat rate to pensionable pay, which is
// capped.
func CalculatePension(gross float64) float64 {
	pensionable := math.Min(gross, PensionableCap)
	return round2(pensionable * PensionRate)
}

func CalculateDeductions(gross float64) Deductions {
	return Deductions{
		Tax:     CalculateTax(gross),
		Health:  CalculateHealth(gross),
		Pension: CalculatePension(gross),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
