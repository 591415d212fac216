package output

// DefaultAssumptions lists key modeling conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"All rates are annual percentages; balances compound monthly",
	"Income tax for each year is paid in April of the following year",
	"Tax brackets, deductions and the 401(k) limit are indexed to inflation",
	"Deficits draw on savings, then brokerage, then retirement accounts by penalty-free date",
	"Surplus cash tops up savings to the emergency fund target; the rest is invested",
	"Home equity is home value less remaining principal; selling costs apply only at sale",
}
