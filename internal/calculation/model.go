package calculation

import (
	"sort"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	taxMonth      = time.April
	rolloverMonth = time.December

	defaultSavingsName   = "Savings"
	defaultBrokerageName = "Brokerage"
)

// Model owns every account and entity of a household and advances them one
// month at a time.
type Model struct {
	currentDate         time.Time
	inflationRate       decimal.Decimal
	targetEmergencyFund decimal.Decimal
	logger              Logger

	peopleByID map[int]domain.Person
	taxManager *TaxManager

	jobs     []*Job
	expenses []*Expense
	houses   []*House

	savingsAccount   *SavingsAccount
	brokerageAccount *BrokerageAccount
	// retirementAccounts lists standalone accounts, then those owned by jobs
	retirementAccounts []*RetirementAccount401k
	// withdrawalOrder is retirementAccounts sorted by penalty-free date
	withdrawalOrder []*RetirementAccount401k

	isBankrupt  bool
	shortfall   decimal.Decimal
	lastTaxBill *domain.TaxBill
}

// NewModel builds the household for params.StartYear. A nil tables uses
// DefaultTaxTables. Any inconsistency in params is returned as a *ConfigError.
func NewModel(params domain.ModelParameters, tables domain.TaxTables) (*Model, error) {
	m := &Model{
		currentDate:         dateutil.MonthOf(params.StartYear, time.January),
		inflationRate:       params.InflationRate,
		targetEmergencyFund: params.TargetEmergencyFund,
		logger:              NopLogger{},
		peopleByID:          make(map[int]domain.Person, len(params.People)),
	}

	for _, p := range params.People {
		if _, dup := m.peopleByID[p.ID]; dup {
			return nil, configErrorf("model", "duplicate person id %d", p.ID)
		}
		m.peopleByID[p.ID] = p
	}

	taxManager, err := NewTaxManager(params.Tax, params.StartYear, params.InflationRate, tables)
	if err != nil {
		return nil, err
	}
	m.taxManager = taxManager

	for _, accountParams := range params.RetirementAccounts {
		employee, err := m.person(accountParams.EmployeeID, "retirement account "+accountParams.Name)
		if err != nil {
			return nil, err
		}
		account, err := NewRetirementAccount401k(accountParams, params.StartYear, employee, taxManager.PenaltyFreeWithdrawalAge())
		if err != nil {
			return nil, err
		}
		m.retirementAccounts = append(m.retirementAccounts, account)
	}

	for _, jobParams := range params.Jobs {
		employee, err := m.person(jobParams.EmployeeID, "job "+jobParams.CompanyName)
		if err != nil {
			return nil, err
		}
		job, err := NewJob(jobParams, params.StartYear, employee, taxManager.Max401kContribution(), taxManager.PenaltyFreeWithdrawalAge())
		if err != nil {
			return nil, err
		}
		m.jobs = append(m.jobs, job)
		m.retirementAccounts = append(m.retirementAccounts, job.RetirementAccount())
	}

	for _, expenseParams := range params.Expenses {
		m.expenses = append(m.expenses, NewExpense(expenseParams))
	}

	for _, houseParams := range params.Houses {
		house, err := NewHouse(houseParams, params.StartYear)
		if err != nil {
			return nil, err
		}
		m.houses = append(m.houses, house)
	}

	savingsParams := params.SavingsAccount
	if savingsParams.Name == "" {
		savingsParams.Name = defaultSavingsName
	}
	m.savingsAccount = NewSavingsAccount(savingsParams, params.StartYear)

	brokerageParams := params.BrokerageAccount
	if brokerageParams.Name == "" {
		brokerageParams.Name = defaultBrokerageName
	}
	m.brokerageAccount = NewBrokerageAccount(brokerageParams, params.StartYear)

	m.withdrawalOrder = make([]*RetirementAccount401k, len(m.retirementAccounts))
	copy(m.withdrawalOrder, m.retirementAccounts)
	sort.SliceStable(m.withdrawalOrder, func(i, j int) bool {
		return m.withdrawalOrder[i].PenaltyFreeWithdrawalDate().Before(m.withdrawalOrder[j].PenaltyFreeWithdrawalDate())
	})

	return m, nil
}

func (m *Model) person(id int, component string) (domain.Person, error) {
	p, ok := m.peopleByID[id]
	if !ok {
		return domain.Person{}, configErrorf(component, "unknown employee id %d", id)
	}
	return p, nil
}

// SetLogger sets the logger used for month-level diagnostics
func (m *Model) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	m.logger = logger
}

// CurrentDate returns the month the next ExecuteMonth will simulate
func (m *Model) CurrentDate() time.Time {
	return m.currentDate
}

// IsBankrupt reports whether the last simulated month ended with a shortfall
func (m *Model) IsBankrupt() bool {
	return m.isBankrupt
}

// Shortfall returns the deficit left uncovered by the last simulated month
func (m *Model) Shortfall() decimal.Decimal {
	return m.shortfall
}

// TaxManager returns the household tax manager
func (m *Model) TaxManager() *TaxManager {
	return m.taxManager
}

// SavingsAccount returns the cash account surplus fills first
func (m *Model) SavingsAccount() *SavingsAccount {
	return m.savingsAccount
}

// BrokerageAccount returns the taxable investment account
func (m *Model) BrokerageAccount() *BrokerageAccount {
	return m.brokerageAccount
}

// Jobs returns the jobs in configuration order
func (m *Model) Jobs() []*Job {
	return m.jobs
}

// Houses returns the houses in configuration order
func (m *Model) Houses() []*House {
	return m.houses
}

// RetirementAccounts returns standalone accounts followed by job-owned ones
func (m *Model) RetirementAccounts() []*RetirementAccount401k {
	return m.retirementAccounts
}

// LastTaxBill returns the most recent April bill, or nil before the first one
func (m *Model) LastTaxBill() *domain.TaxBill {
	return m.lastTaxBill
}

// WithdrawalOrder returns every liquidity source in the order deficits drain them
func (m *Model) WithdrawalOrder() []Account {
	order := make([]Account, 0, 2+len(m.withdrawalOrder))
	order = append(order, m.savingsAccount, m.brokerageAccount)
	for _, account := range m.withdrawalOrder {
		order = append(order, account)
	}
	return order
}

// depositCash tops savings up to the emergency fund target and invests the rest
func (m *Model) depositCash(amount decimal.Decimal) {
	gap := decimal.Max(decimal.Zero, m.targetEmergencyFund.Sub(m.savingsAccount.Value()))
	toSavings := decimal.Min(amount, gap)

	m.savingsAccount.Contribute(toSavings)
	m.brokerageAccount.Contribute(amount.Sub(toSavings))
}

// withdrawCash drains accounts in withdrawal order and returns the uncovered remainder
func (m *Model) withdrawCash(amount decimal.Decimal, month time.Month) decimal.Decimal {
	remaining := amount
	for _, account := range m.WithdrawalOrder() {
		if !remaining.IsPositive() {
			break
		}
		withdrawn := account.Withdraw(remaining, month)
		if withdrawn.IsPositive() {
			m.logger.Debugf("%s: withdrew %s from %s", dateutil.FormatMonth(m.currentDate), withdrawn.StringFixed(2), account.Name())
		}
		remaining = remaining.Sub(withdrawn)
	}
	return remaining
}

// TaxDocuments collects the forms every entity issued for the previous year
func (m *Model) TaxDocuments() domain.TaxDocuments {
	var docs domain.TaxDocuments

	for _, job := range m.jobs {
		docs.W2s = append(docs.W2s, job.PreviousYearW2())
	}
	docs.Form1099Ints = append(docs.Form1099Ints, m.savingsAccount.PreviousYear1099Int())
	docs.Form1099Bs = append(docs.Form1099Bs, m.brokerageAccount.PreviousYear1099B())
	for _, account := range m.withdrawalOrder {
		docs.Form1099Rs = append(docs.Form1099Rs, account.PreviousYear1099Rs()...)
	}
	for _, house := range m.houses {
		docs.Form1098s = append(docs.Form1098s, house.PreviousYear1098())
	}

	return docs
}

func (m *Model) computeTaxes() decimal.Decimal {
	bill := m.taxManager.ComputePreviousYearTax(m.TaxDocuments())
	m.lastTaxBill = &bill
	m.logger.Infof("%d tax bill: total %s (federal %s, state %s, capital gains %s, penalty %s, property %s)",
		bill.Year, bill.Total.StringFixed(2), bill.FederalIncomeTax.StringFixed(2), bill.StateTax.StringFixed(2),
		bill.CapitalGainsTax.StringFixed(2), bill.EarlyWithdrawalPenalty.StringFixed(2), bill.PropertyTax.StringFixed(2))
	return bill.Total
}

// ExecuteMonth advances the household by one calendar month
func (m *Model) ExecuteMonth() {
	month := m.currentDate.Month()

	// Appreciation
	m.savingsAccount.ReceiveMonthlyInterest()
	m.brokerageAccount.ReceiveMonthlyReturn()
	for _, account := range m.retirementAccounts {
		account.ReceiveMonthlyReturn()
	}
	for _, house := range m.houses {
		house.ApplyMonthlyAppreciation()
	}

	// Cash flow
	var balance decimal.Decimal
	for _, job := range m.jobs {
		if job.IsActive(m.currentDate) {
			balance = balance.Add(job.SendMonthlyPaystub(month).Income)
		}
	}
	for _, expense := range m.expenses {
		if expense.IsActive(m.currentDate) {
			balance = balance.Sub(expense.MonthlyExpense())
		}
	}
	for _, house := range m.houses {
		before := house.State()
		balance = balance.Add(house.ExecuteMonthlyCashflow(month))
		if after := house.State(); after != before {
			m.logger.Infof("%s: house %s is now %s", dateutil.FormatMonth(m.currentDate), house.Name(), after)
		}
	}

	if month == taxMonth {
		balance = balance.Sub(m.computeTaxes())
	}

	m.shortfall = decimal.Zero
	if !balance.IsNegative() {
		m.depositCash(balance)
	} else {
		m.shortfall = m.withdrawCash(balance.Neg(), month)
	}
	m.isBankrupt = m.shortfall.IsPositive()
	if m.isBankrupt {
		m.logger.Warnf("%s: shortfall of %s after draining every account", dateutil.FormatMonth(m.currentDate), m.shortfall.StringFixed(2))
	}

	if month == rolloverMonth {
		m.incrementYear()
	}

	m.currentDate = dateutil.AddMonths(m.currentDate, 1)
}

// incrementYear rolls every entity into the next year. Jobs read the 401(k)
// cap after the tax manager has been rolled.
func (m *Model) incrementYear() {
	m.logger.Debugf("rolling over to %d", m.currentDate.Year()+1)
	m.taxManager.IncrementYear(m.inflationRate)
	for _, job := range m.jobs {
		job.IncrementYear(m.inflationRate, m.taxManager.Max401kContribution())
	}
	for _, expense := range m.expenses {
		expense.IncrementYear(m.inflationRate)
	}
	for _, house := range m.houses {
		house.IncrementYear(m.inflationRate)
	}
	m.savingsAccount.IncrementYear()
	m.brokerageAccount.IncrementYear()
	for _, account := range m.retirementAccounts {
		account.IncrementYear()
	}
}

// NetWorth is liquid and retirement balances plus home equity
func (m *Model) NetWorth() decimal.Decimal {
	total := m.savingsAccount.Value().Add(m.brokerageAccount.Value())
	for _, account := range m.retirementAccounts {
		total = total.Add(account.Value())
	}
	for _, house := range m.houses {
		total = total.Add(house.HomeEquity())
	}
	return total
}

// MonthSummary snapshots net worth and each asset at the current date
func (m *Model) MonthSummary() domain.MonthSummary {
	assets := []domain.AssetSummary{
		{Name: m.savingsAccount.Name(), Kind: domain.AssetSavings, Value: m.savingsAccount.Value()},
		{Name: m.brokerageAccount.Name(), Kind: domain.AssetBrokerage, Value: m.brokerageAccount.Value()},
	}
	for _, house := range m.houses {
		assets = append(assets, domain.AssetSummary{Name: house.Name(), Kind: domain.AssetHome, Value: house.HomeEquity()})
	}
	for _, account := range m.withdrawalOrder {
		assets = append(assets, domain.AssetSummary{Name: account.Name(), Kind: domain.AssetRetirement, Value: account.Value()})
	}

	return domain.MonthSummary{
		Date:       m.currentDate,
		NetWorth:   m.NetWorth(),
		Assets:     assets,
		IsBankrupt: m.isBankrupt,
		Shortfall:  m.shortfall,
	}
}
