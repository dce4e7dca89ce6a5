package flight

import "fmt"

// DiscType identifies a disc model from the fixed catalog. The zero value
// is the default disc.
type DiscType int

const (
	DiscWraith DiscType = iota
	DiscFirebird
	DiscRoadrunner
	DiscFairwayDriver

	discTypeCount
)

type discInfo struct {
	code string // internal model code used by the flight engine
	name string // human-readable display name
}

var discCatalog = [discTypeCount]discInfo{
	DiscWraith:        {code: "dd2", name: "Innova Wraith"},
	DiscFirebird:      {code: "cd1", name: "Innova Firebird"},
	DiscRoadrunner:    {code: "cd5", name: "Innova Roadrunner"},
	DiscFairwayDriver: {code: "fd2", name: "Innova Fairway Driver"},
}

// Valid reports whether d is part of the catalog.
func (d DiscType) Valid() bool {
	return d >= 0 && d < discTypeCount
}

// Code returns the internal model code for the disc.
func (d DiscType) Code() string {
	if !d.Valid() {
		return fmt.Sprintf("unknown(%d)", int(d))
	}
	return discCatalog[d].code
}

// DisplayName returns the human-readable name for the disc.
func (d DiscType) DisplayName() string {
	if !d.Valid() {
		return fmt.Sprintf("unknown(%d)", int(d))
	}
	return discCatalog[d].name
}

// Next cycles to the following disc in the catalog, wrapping around.
func (d DiscType) Next() DiscType {
	if !d.Valid() {
		return DiscWraith
	}
	return (d + 1) % discTypeCount
}

// DiscTypes returns every disc in the catalog, in display order.
func DiscTypes() []DiscType {
	out := make([]DiscType, discTypeCount)
	for i := range out {
		out[i] = DiscType(i)
	}
	return out
}

// DiscByCode resolves an internal model code to its catalog entry. Unknown
// codes fail here, at the boundary, rather than inside the flight engine.
func DiscByCode(code string) (DiscType, error) {
	for i, info := range discCatalog {
		if info.code == code {
			return DiscType(i), nil
		}
	}
	return 0, fmt.Errorf("flight: unknown disc code %q", code)
}
