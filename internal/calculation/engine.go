package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// Simulator runs a Model for the requested duration and collects its snapshots
type Simulator struct {
	// TaxTables overrides DefaultTaxTables when non-nil
	TaxTables domain.TaxTables
	// HaltOnBankruptcy stops the run after the first month with a shortfall
	HaltOnBankruptcy bool

	logger Logger
}

// NewSimulator creates a simulator that halts on bankruptcy and logs nothing
func NewSimulator() *Simulator {
	return &Simulator{
		HaltOnBankruptcy: true,
		logger:           NopLogger{},
	}
}

// SetLogger sets the logger passed to every model the simulator builds
func (s *Simulator) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	s.logger = logger
}

// Run simulates params month by month. The forecast starts with the opening
// snapshot and has DurationYears*12+1 entries unless the run halts on
// bankruptcy. ctx is checked between months.
func (s *Simulator) Run(ctx context.Context, params domain.ModelParameters) (*domain.Forecast, error) {
	if params.DurationYears < 0 {
		return nil, configErrorf("simulator", "duration must not be negative, got %d years", params.DurationYears)
	}

	model, err := NewModel(params, s.TaxTables)
	if err != nil {
		return nil, fmt.Errorf("failed to build model: %w", err)
	}
	model.SetLogger(s.logger)
	s.logModel(params)

	totalMonths := params.TotalMonths()
	forecast := &domain.Forecast{
		StartYear:     params.StartYear,
		DurationYears: params.DurationYears,
		Months:        make([]domain.MonthSummary, 0, totalMonths+1),
	}
	forecast.Months = append(forecast.Months, model.MonthSummary())

	s.logger.Infof("simulating %d months from %d", totalMonths, params.StartYear)

	for i := 0; i < totalMonths; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation cancelled at %s: %w", dateutil.FormatMonth(model.CurrentDate()), err)
		}

		month := model.CurrentDate()
		model.ExecuteMonth()
		summary := model.MonthSummary()
		forecast.Months = append(forecast.Months, summary)

		if summary.IsBankrupt {
			if !forecast.Bankrupt {
				forecast.Bankrupt = true
				bankruptDate := month
				forecast.BankruptDate = &bankruptDate
			}
			if s.HaltOnBankruptcy {
				s.logger.Warnf("bankrupt in %s, halting", dateutil.FormatMonth(month))
				break
			}
		}
	}

	final := forecast.Final()
	s.logger.Infof("simulation finished at %s with net worth %s", dateutil.FormatMonth(final.Date), final.NetWorth.StringFixed(2))

	return forecast, nil
}

// logModel records what the model was built from and each person's age at the start
func (s *Simulator) logModel(params domain.ModelParameters) {
	s.logger.Infof("model built: %d people, %d jobs, %d expenses, %d houses, %d retirement accounts",
		len(params.People), len(params.Jobs), len(params.Expenses), len(params.Houses),
		len(params.Jobs)+len(params.RetirementAccounts))

	start := dateutil.MonthOf(params.StartYear, time.January)
	for _, p := range params.People {
		s.logger.Debugf("%s is %d at the start of %d", p.Name, dateutil.YearsBetween(p.Birthday, start), params.StartYear)
	}
}
