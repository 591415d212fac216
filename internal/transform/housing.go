package transform

import (
	"fmt"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// RemoveHouse drops a house that has not been bought yet at the start of the
// simulation. An empty House removes every such house.
type RemoveHouse struct {
	House string
}

func (rh *RemoveHouse) Name() string {
	return "remove_house"
}

func (rh *RemoveHouse) Description() string {
	if rh.House == "" {
		return "Skip every planned home purchase"
	}
	return fmt.Sprintf("Skip buying %s", rh.House)
}

func (rh *RemoveHouse) Validate(base *domain.ModelParameters) error {
	if err := validateBase(rh.Name(), base); err != nil {
		return err
	}
	if rh.House == "" {
		return nil
	}
	i := findHouse(base, rh.House)
	if i < 0 {
		return NewTransformError(rh.Name(), "validate", fmt.Sprintf("house %s not found", rh.House), nil)
	}
	if !isPlanned(base, base.Houses[i]) {
		return NewTransformError(rh.Name(), "validate", fmt.Sprintf("house %s is already owned", rh.House), nil)
	}
	return nil
}

func (rh *RemoveHouse) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	kept := modified.Houses[:0]
	for _, h := range modified.Houses {
		if isPlanned(base, h) && (rh.House == "" || h.Name == rh.House) {
			continue
		}
		kept = append(kept, h)
	}
	modified.Houses = kept
	return modified, nil
}

// DelayHouse postpones a planned purchase, and its sale if any, by Months.
// An empty House delays every planned purchase.
type DelayHouse struct {
	House  string
	Months int
}

func (dh *DelayHouse) Name() string {
	return "delay_house"
}

func (dh *DelayHouse) Description() string {
	target := "every planned purchase"
	if dh.House != "" {
		target = dh.House
	}
	return fmt.Sprintf("Delay %s by %d months", target, dh.Months)
}

func (dh *DelayHouse) Validate(base *domain.ModelParameters) error {
	if err := validateBase(dh.Name(), base); err != nil {
		return err
	}
	if dh.Months < 0 {
		return NewTransformError(dh.Name(), "validate", fmt.Sprintf("months must be non-negative, got %d", dh.Months), nil)
	}
	if dh.House == "" {
		return nil
	}
	i := findHouse(base, dh.House)
	if i < 0 {
		return NewTransformError(dh.Name(), "validate", fmt.Sprintf("house %s not found", dh.House), nil)
	}
	if !isPlanned(base, base.Houses[i]) {
		return NewTransformError(dh.Name(), "validate", fmt.Sprintf("house %s is already owned", dh.House), nil)
	}
	return nil
}

func (dh *DelayHouse) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	for i := range modified.Houses {
		h := &modified.Houses[i]
		if !isPlanned(base, *h) || (dh.House != "" && h.Name != dh.House) {
			continue
		}
		h.BuyDate = dateutil.AddMonths(h.BuyDate, dh.Months)
		if !h.SellDate.IsZero() {
			h.SellDate = dateutil.AddMonths(h.SellDate, dh.Months)
		}
	}
	return modified, nil
}

func findHouse(params *domain.ModelParameters, name string) int {
	for i, h := range params.Houses {
		if h.Name == name {
			return i
		}
	}
	return -1
}

// isPlanned reports whether h is bought during the simulation rather than before it
func isPlanned(params *domain.ModelParameters, h domain.HouseParameters) bool {
	return h.BuyDate.Year() >= params.StartYear
}
