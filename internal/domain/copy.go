package domain

import "github.com/shopspring/decimal"

// DeepCopy returns a copy of p that shares no slices or pointers with it
func (p *ModelParameters) DeepCopy() *ModelParameters {
	if p == nil {
		return nil
	}

	c := *p
	c.People = append([]Person(nil), p.People...)
	c.Jobs = append([]JobParameters(nil), p.Jobs...)
	c.Expenses = append([]ExpenseParameters(nil), p.Expenses...)
	c.RetirementAccounts = append([]RetirementAccountParameters(nil), p.RetirementAccounts...)

	c.Houses = make([]HouseParameters, len(p.Houses))
	for i, h := range p.Houses {
		h.RemainingPrincipal = copyDecimal(h.RemainingPrincipal)
		h.HomeBuyPrice = copyDecimal(h.HomeBuyPrice)
		c.Houses[i] = h
	}
	if p.Houses == nil {
		c.Houses = nil
	}
	return &c
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
