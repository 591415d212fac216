package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages named what-if scenarios
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ParamsTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common household what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "high_inflation",
		Description: "Inflation two points higher than assumed",
		Transforms: []ParamsTransform{
			&AdjustInflation{Delta: decimal.NewFromInt(2)},
		},
	})

	registry.Register(Template{
		Name:        "bear_market",
		Description: "Investment returns three points lower than assumed",
		Transforms: []ParamsTransform{
			&AdjustReturns{Delta: decimal.NewFromInt(-3)},
		},
	})

	registry.Register(Template{
		Name:        "frugal",
		Description: "Cut every expense by 10%",
		Transforms: []ParamsTransform{
			&ScaleExpenses{Percent: decimal.NewFromInt(-10)},
		},
	})

	registry.Register(Template{
		Name:        "max_401k",
		Description: "Contribute the full 401(k) limit at every job",
		Transforms: []ParamsTransform{
			&SetContribution{Percent: decimal.NewFromInt(100)},
		},
	})

	registry.Register(Template{
		Name:        "no_house",
		Description: "Skip every planned home purchase",
		Transforms: []ParamsTransform{
			&RemoveHouse{},
		},
	})

	registry.Register(Template{
		Name:        "stagflation",
		Description: "Inflation two points higher and returns three points lower",
		Transforms: []ParamsTransform{
			&AdjustInflation{Delta: decimal.NewFromInt(2)},
			&AdjustReturns{Delta: decimal.NewFromInt(-3)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to base
func ApplyTemplate(base *domain.ModelParameters, template Template) (*domain.ModelParameters, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates and transforms
func GetTemplateHelp(templates *TemplateRegistry, transforms *TransformRegistry) string {
	var sb strings.Builder

	sb.WriteString("Templates:\n")
	for _, name := range templates.List() {
		t, _ := templates.Get(name)
		fmt.Fprintf(&sb, "  %-16s %s\n", t.Name, t.Description)
	}

	sb.WriteString("\nTransforms:\n")
	for _, name := range transforms.List() {
		fmt.Fprintf(&sb, "  %s\n", name)
	}

	sb.WriteString("\nUsage:\n")
	sb.WriteString("  nwgo compare household.yaml --with frugal,bear_market\n")
	sb.WriteString("  nwgo compare household.yaml --transform end_job:company=Acme,date=2040-06\n")

	return sb.String()
}
