package model

// Core catalog and request/response types. Catalog entries are read-only
// snapshots supplied by the caller; the engine never mutates them.

// CartonSpec is one manifest line: a carton shape plus how many units of
// it ship. Dimensions share the truck catalog's length unit.
type CartonSpec struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Value    float64 `json:"value,omitempty"`
	Fragile  bool    `json:"fragile,omitempty"`
	Quantity int     `json:"quantity"`
}

// Volume returns the volume of a single unit.
func (c CartonSpec) Volume() float64 { return c.Length * c.Width * c.Height }

// TruckSpec describes one catalog truck: internal cargo dims, payload
// limit and a flat per-km running cost.
type TruckSpec struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MaxWeight float64 `json:"maxWeight"`
	CostPerKm float64 `json:"costPerKm"`
	Category  string  `json:"category,omitempty"`
}

// Volume returns the internal cargo volume.
func (t TruckSpec) Volume() float64 { return t.Length * t.Width * t.Height }

// RecommendRequest is the host-facing input: a cargo manifest, an optional
// inline truck catalog (defaults to the host's loaded snapshot), the
// algorithm selector and an optional ranking size.
type RecommendRequest struct {
	Cartons   []CartonSpec `json:"cartons"`
	Trucks    []TruckSpec  `json:"trucks,omitempty"`
	Algorithm string       `json:"algorithm,omitempty"`
	TopN      int          `json:"topN,omitempty"`
}
