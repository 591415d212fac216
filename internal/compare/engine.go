package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/internal/transform"
)

// BaseScenarioName labels the unmodified household plan
const BaseScenarioName = "base"

// CustomScenarioName labels the scenario built from ad-hoc transform specs
const CustomScenarioName = "custom"

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Simulator         *calculation.Simulator
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a comparison engine with the built-in templates and transforms
func NewCompareEngine(simulator *calculation.Simulator) *CompareEngine {
	return &CompareEngine{
		Simulator:         simulator,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates  []string // Template names, each run as its own scenario
	Transforms []string // Transform specs, combined into one custom scenario
	ConfigPath string
}

// Compare simulates the base plan and every requested alternative
func (ce *CompareEngine) Compare(
	ctx context.Context,
	params domain.ModelParameters,
	options CompareOptions,
) (*ComparisonSet, error) {

	if len(options.Templates) == 0 && len(options.Transforms) == 0 {
		return nil, fmt.Errorf("nothing to compare: specify at least one template or transform")
	}

	// Resolve everything up front so a typo fails before any simulation runs
	templates := make([]transform.Template, 0, len(options.Templates))
	for _, name := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found (available: %s)", name, strings.Join(ce.TemplateRegistry.List(), ", "))
		}
		templates = append(templates, template)
	}

	var custom []transform.ParamsTransform
	for _, spec := range options.Transforms {
		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transform %q: %w", spec, err)
		}
		custom = append(custom, t)
	}

	baseForecast, err := ce.Simulator.Run(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(BaseScenarioName, baseForecast)
	baseResult.Description = "Household plan as configured"

	alternatives := []ComparisonResult{}

	for _, template := range templates {
		altResult, err := ce.runScenario(ctx, &params, template.Name, template.Description, template.Transforms, baseResult)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, altResult)
	}

	if len(custom) > 0 {
		descriptions := make([]string, 0, len(custom))
		for _, t := range custom {
			descriptions = append(descriptions, t.Description())
		}
		altResult, err := ce.runScenario(ctx, &params, CustomScenarioName, strings.Join(descriptions, "; "), custom, baseResult)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}

	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) runScenario(
	ctx context.Context,
	base *domain.ModelParameters,
	name, description string,
	transforms []transform.ParamsTransform,
	baseResult ComparisonResult,
) (ComparisonResult, error) {
	modified, err := transform.ApplyTransforms(base, transforms)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("failed to apply scenario %s: %w", name, err)
	}

	forecast, err := ce.Simulator.Run(ctx, *modified)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
	}

	result := ce.MetricsCalculator.CalculateMetrics(name, forecast)
	result.Description = description
	return ce.MetricsCalculator.CalculateComparison(result, baseResult), nil
}
