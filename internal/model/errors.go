package model

import (
	"fmt"
	"strings"
)

// FieldError names one offending manifest field.
type FieldError struct {
	CartonID string `json:"cartonId"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("carton %s: %s %s", e.CartonID, e.Field, e.Message)
}

// ValidationError aggregates per-carton input problems. It is returned
// before any placement work starts.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid manifest: " + strings.Join(msgs, "; ")
}

// ValidateManifest rejects non-positive dimensions, weights and
// quantities. A nil return means the manifest is safe to expand.
func ValidateManifest(cartons []CartonSpec) error {
	var verr ValidationError
	add := func(id, field, msg string) {
		verr.Fields = append(verr.Fields, FieldError{CartonID: id, Field: field, Message: msg})
	}
	if len(cartons) == 0 {
		add("", "cartons", "must not be empty")
	}
	for _, c := range cartons {
		if c.Length <= 0 {
			add(c.ID, "length", "must be > 0")
		}
		if c.Width <= 0 {
			add(c.ID, "width", "must be > 0")
		}
		if c.Height <= 0 {
			add(c.ID, "height", "must be > 0")
		}
		if c.Weight <= 0 {
			add(c.ID, "weight", "must be > 0")
		}
		if c.Quantity < 1 {
			add(c.ID, "quantity", "must be >= 1")
		}
	}
	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// ValidateCatalog rejects trucks with non-positive dims or payload.
func ValidateCatalog(trucks []TruckSpec) error {
	for _, t := range trucks {
		if t.Length <= 0 || t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("truck %s: internal dimensions must be > 0", t.ID)
		}
		if t.MaxWeight <= 0 {
			return fmt.Errorf("truck %s: maxWeight must be > 0", t.ID)
		}
		if t.CostPerKm < 0 {
			return fmt.Errorf("truck %s: costPerKm must be >= 0", t.ID)
		}
	}
	return nil
}

// FleetError reports that no combination of catalog trucks can hold the
// manifest. The unassignable totals let the caller suggest catalog
// expansion.
type FleetError struct {
	UnassignedCount  int     `json:"unassignedCount"`
	UnassignedVolume float64 `json:"unassignedVolume"`
	UnassignedWeight float64 `json:"unassignedWeight"`
}

func (e *FleetError) Error() string {
	return fmt.Sprintf("no feasible fleet: %d instances unassignable (%.3f volume, %.1f weight)",
		e.UnassignedCount, e.UnassignedVolume, e.UnassignedWeight)
}
