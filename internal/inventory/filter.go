package inventory

import (
	"strings"

	"voltdrive/internal/models"
)

// Match is a single exact-value constraint. The zero value is unconstrained,
// which is what the storefront's "all" selection maps to.
type Match struct {
	value string
	set   bool
}

func Exactly(v string) Match {
	return Match{value: v, set: true}
}

func Any() Match {
	return Match{}
}

func (m Match) Allows(v string) bool {
	return !m.set || m.value == v
}

// Bounds restricts the numeric value parsed out of a spec string. A nil side is open.
type Bounds struct {
	Min *int
	Max *int
}

func (b Bounds) Allows(v int) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// Int is a convenience for building Bounds literals.
func Int(v int) *int {
	return &v
}

// Filters is the full set of narrowing constraints over the vehicle list.
// Zero value keeps everything.
type Filters struct {
	Make       Match
	Model      Match
	Color      Match
	Drivetrain Match
	Year       *int
	Range      Bounds
	Battery    Bounds
}

func (f Filters) keeps(v *models.Vehicle) bool {
	if !f.Make.Allows(v.Make) {
		return false
	}
	if !f.Model.Allows(v.Model) {
		return false
	}
	if !f.Range.Allows(ParseLeadingInt(v.Specs.Range)) {
		return false
	}
	if !f.matchesColor(v) {
		return false
	}
	if f.Year != nil && v.Year != *f.Year {
		return false
	}
	if !f.Battery.Allows(ParseLeadingInt(v.Specs.Battery)) {
		return false
	}
	if !f.Drivetrain.Allows(string(v.Drivetrain)) {
		return false
	}
	return true
}

func (f Filters) matchesColor(v *models.Vehicle) bool {
	if !f.Color.set {
		return true
	}
	for _, c := range v.Colors {
		if c.Name == f.Color.value {
			return true
		}
	}
	return false
}

// matchesQuery is a case-insensitive substring search over make, model and
// both description languages. An empty query keeps everything.
func matchesQuery(v *models.Vehicle, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{v.Make, v.Model, v.Description, v.DescriptionAr} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ParseLeadingInt extracts the integer prefix of a unit-bearing spec string,
// skipping leading whitespace: "400 miles" -> 400, "75 kWh" -> 75.
// Strings without a numeric prefix parse as 0, so they fall out of any
// filter with a positive lower bound.
func ParseLeadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	n := 0
	found := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		found = true
		i++
	}
	if !found {
		return 0
	}
	return n
}
