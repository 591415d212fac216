package transform

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// EndJob moves a job's end date, e.g. to model an early retirement.
type EndJob struct {
	Company string
	Date    time.Time
}

func (ej *EndJob) Name() string {
	return "end_job"
}

func (ej *EndJob) Description() string {
	return fmt.Sprintf("End %s in %s", ej.Company, dateutil.FormatMonth(ej.Date))
}

func (ej *EndJob) Validate(base *domain.ModelParameters) error {
	if err := validateBase(ej.Name(), base); err != nil {
		return err
	}
	if ej.Company == "" {
		return NewTransformError(ej.Name(), "validate", "company name cannot be empty", nil)
	}
	if ej.Date.IsZero() {
		return NewTransformError(ej.Name(), "validate", "date cannot be zero", nil)
	}
	i := findJob(base, ej.Company)
	if i < 0 {
		return NewTransformError(ej.Name(), "validate", fmt.Sprintf("job %s not found", ej.Company), nil)
	}
	if ej.Date.Before(dateutil.MonthStart(base.Jobs[i].StartDate)) {
		return NewTransformError(ej.Name(), "validate", "end date cannot be before the job's start date", nil)
	}
	return nil
}

func (ej *EndJob) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	modified.Jobs[findJob(modified, ej.Company)].EndDate = dateutil.MonthStart(ej.Date)
	return modified, nil
}

// SetContribution sets the percent of the 401(k) limit contributed.
// An empty Company applies to every job.
type SetContribution struct {
	Company string
	Percent decimal.Decimal
}

func (sc *SetContribution) Name() string {
	return "set_contribution"
}

func (sc *SetContribution) Description() string {
	target := "every job"
	if sc.Company != "" {
		target = sc.Company
	}
	return fmt.Sprintf("Contribute %s%% of the 401(k) limit at %s", sc.Percent, target)
}

func (sc *SetContribution) Validate(base *domain.ModelParameters) error {
	if err := validateBase(sc.Name(), base); err != nil {
		return err
	}
	if sc.Percent.IsNegative() || sc.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("percent must be between 0 and 100, got %s", sc.Percent), nil)
	}
	if sc.Company != "" && findJob(base, sc.Company) < 0 {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("job %s not found", sc.Company), nil)
	}
	if len(base.Jobs) == 0 {
		return NewTransformError(sc.Name(), "validate", "no jobs to change", nil)
	}
	return nil
}

func (sc *SetContribution) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	for i := range modified.Jobs {
		if sc.Company == "" || modified.Jobs[i].CompanyName == sc.Company {
			modified.Jobs[i].PercentOfMax401kContribution = sc.Percent
		}
	}
	return modified, nil
}

func findJob(params *domain.ModelParameters, company string) int {
	for i, j := range params.Jobs {
		if j.CompanyName == company {
			return i
		}
	}
	return -1
}
