package catalog

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
)

// The host loads its truck catalog from a YAML snapshot at startup. The
// engine itself only ever receives the in-memory slice; there is no
// persistence behind it.

type file struct {
	Trucks []entry `yaml:"trucks"`
}

type entry struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Length    float64 `yaml:"length"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxWeight float64 `yaml:"maxWeight"`
	CostPerKm float64 `yaml:"costPerKm"`
	Category  string  `yaml:"category"`
}

// LoadFile reads and validates a truck catalog snapshot.
func LoadFile(path string) ([]model.TruckSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog document.
func Parse(raw []byte) ([]model.TruckSpec, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Trucks) == 0 {
		return nil, fmt.Errorf("catalog has no trucks")
	}
	seen := map[string]bool{}
	out := make([]model.TruckSpec, 0, len(f.Trucks))
	for _, e := range f.Trucks {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog truck missing id")
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate truck id: %s", e.ID)
		}
		seen[e.ID] = true
		out = append(out, model.TruckSpec{
			ID:        e.ID,
			Name:      e.Name,
			Length:    e.Length,
			Width:     e.Width,
			Height:    e.Height,
			MaxWeight: e.MaxWeight,
			CostPerKm: e.CostPerKm,
			Category:  e.Category,
		})
	}
	if err := model.ValidateCatalog(out); err != nil {
		return nil, err
	}
	return out, nil
}
