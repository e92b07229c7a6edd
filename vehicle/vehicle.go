package vehicle

import (
	"sort"
	"strings"
)

// Record is a single vehicle entry as supplied by the data source.
type Record struct {
	ID                int     `json:"id,omitempty" yaml:"id,omitempty"`
	Make              string  `json:"make" yaml:"make"`
	Model             string  `json:"model" yaml:"model"`
	Submodel          *string `json:"submodel" yaml:"submodel"`
	DateOfManufacture string  `json:"dateOfManufacture" yaml:"dateOfManufacture"`
	Transmission      string  `json:"transmission" yaml:"transmission"`
	Fuel              string  `json:"fuel" yaml:"fuel"`
	EngineSize        string  `json:"engineSize" yaml:"engineSize"`
}

// HasSubmodel reports whether the record carries a non-empty submodel.
func (r Record) HasSubmodel() bool {
	return r.Submodel != nil && *r.Submodel != ""
}

// Details aggregates the attribute facets of a filtered set of records.
type Details struct {
	DateOfManufacture []string `json:"dateOfManufacture"`
	Transmission      []string `json:"transmission"`
	Fuel              []string `json:"fuel"`
	EngineSize        []string `json:"engineSize"`
}

// Collection is a read-only set of records. None of its methods modify it.
type Collection []Record

// ListMakes returns the distinct makes in ascending order. A positive limit
// truncates the result; zero or negative returns everything.
func (c Collection) ListMakes(limit int) []string {
	makes := make([]string, 0, len(c))
	for _, r := range c {
		makes = append(makes, r.Make)
	}
	return truncate(distinct(makes), limit)
}

// ListModels returns the distinct models of the given make.
func (c Collection) ListModels(makeName string) ([]string, error) {
	if makeName == "" {
		return nil, &ValidationError{Message: MsgMakeRequired}
	}

	var models []string
	for _, r := range c.match(makeName, "") {
		models = append(models, r.Model)
	}
	return distinct(models), nil
}

// ListSubmodels returns the distinct, non-empty submodels of make and model.
func (c Collection) ListSubmodels(makeName, model string) ([]string, error) {
	if makeName == "" || model == "" {
		return nil, &ValidationError{Message: MsgMakeModelRequired}
	}

	var submodels []string
	for _, r := range c.match(makeName, model) {
		if r.HasSubmodel() {
			submodels = append(submodels, *r.Submodel)
		}
	}
	return distinct(submodels), nil
}

// GetDetails aggregates the attributes of every record matching make and
// model, narrowed to submodel when one is given.
func (c Collection) GetDetails(makeName, model, submodel string) (Details, error) {
	if makeName == "" || model == "" {
		return Details{}, &ValidationError{Message: MsgMakeModelRequired}
	}

	matched := c.match(makeName, model)
	if submodel != "" {
		want := fold(submodel)
		var filtered Collection
		for _, r := range matched {
			if r.Submodel != nil && fold(*r.Submodel) == want {
				filtered = append(filtered, r)
			}
		}
		matched = filtered
	}
	if len(matched) == 0 {
		return Details{}, &NotFoundError{Message: MsgNoMatch}
	}

	var years, transmissions, fuels, engines []string
	for _, r := range matched {
		years = append(years, r.DateOfManufacture)
		transmissions = append(transmissions, r.Transmission)
		fuels = append(fuels, r.Fuel)
		engines = append(engines, r.EngineSize)
	}
	return Details{
		DateOfManufacture: distinct(years),
		Transmission:      distinct(transmissions),
		Fuel:              distinct(fuels),
		EngineSize:        distinct(engines),
	}, nil
}

// match returns the records whose make (and model, when non-empty) equal the
// arguments under case folding. The result never aliases c.
func (c Collection) match(makeName, model string) Collection {
	wantMake, wantModel := fold(makeName), fold(model)
	var out Collection
	for _, r := range c {
		if fold(r.Make) != wantMake {
			continue
		}
		if model != "" && fold(r.Model) != wantModel {
			continue
		}
		out = append(out, r)
	}
	return out
}

// fold is the single case folding used for every comparison.
func fold(s string) string {
	return strings.ToLower(s)
}

// distinct deduplicates values and sorts them. It always returns a non-nil
// slice so empty results encode as [].
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func truncate(values []string, limit int) []string {
	if limit <= 0 || limit >= len(values) {
		return values
	}
	return values[:limit:limit]
}
