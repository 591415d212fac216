package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ParamsTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("adjust_inflation", createAdjustInflation)
	registry.Register("adjust_returns", createAdjustReturns)
	registry.Register("set_emergency_fund", createSetEmergencyFund)
	registry.Register("end_job", createEndJob)
	registry.Register("set_contribution", createSetContribution)
	registry.Register("scale_expenses", createScaleExpenses)
	registry.Register("remove_house", createRemoveHouse)
	registry.Register("delay_house", createDelayHouse)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ParamsTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "end_job:company=Acme,date=2040-06"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ParamsTransform, error) {
	name, paramsStr, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			k, v, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createAdjustInflation(params map[string]string) (ParamsTransform, error) {
	delta, err := requireDecimal("adjust_inflation", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustInflation{Delta: delta}, nil
}

func createAdjustReturns(params map[string]string) (ParamsTransform, error) {
	delta, err := requireDecimal("adjust_returns", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustReturns{Delta: delta}, nil
}

func createSetEmergencyFund(params map[string]string) (ParamsTransform, error) {
	amount, err := requireDecimal("set_emergency_fund", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetEmergencyFund{Amount: amount}, nil
}

func createEndJob(params map[string]string) (ParamsTransform, error) {
	company, ok := params["company"]
	if !ok {
		return nil, fmt.Errorf("end_job requires 'company' parameter")
	}
	dateStr, ok := params["date"]
	if !ok {
		return nil, fmt.Errorf("end_job requires 'date' parameter")
	}
	date, err := dateutil.ParseMonth(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM: %w", err)
	}
	return &EndJob{Company: company, Date: date}, nil
}

func createSetContribution(params map[string]string) (ParamsTransform, error) {
	percent, err := requireDecimal("set_contribution", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetContribution{Company: params["company"], Percent: percent}, nil
}

func createScaleExpenses(params map[string]string) (ParamsTransform, error) {
	percent, err := requireDecimal("scale_expenses", params, "percent")
	if err != nil {
		return nil, err
	}
	return &ScaleExpenses{Expense: params["name"], Percent: percent}, nil
}

func createRemoveHouse(params map[string]string) (ParamsTransform, error) {
	return &RemoveHouse{House: params["name"]}, nil
}

func createDelayHouse(params map[string]string) (ParamsTransform, error) {
	monthsStr, ok := params["months"]
	if !ok {
		return nil, fmt.Errorf("delay_house requires 'months' parameter")
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid months value: %w", err)
	}
	return &DelayHouse{House: params["name"], Months: months}, nil
}

func requireDecimal(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	s, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
