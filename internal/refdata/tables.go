package refdata

import (
	"fmt"
	"strings"
)

// Tables holds the indexed reference data. It is built once at startup and is
// read-only afterwards, so it is safe to share across concurrent requests.
type Tables struct {
	aspects      []Aspect
	competencies []CompetencyLevel
	domains      []Domain

	aspectByName  map[string]Aspect
	competencyKey map[string]CompetencyLevel
	requiredNames []string
}

// NewTables builds the indexed reference tables from the static datasets.
func NewTables() *Tables {
	t := &Tables{
		aspects:       aspectData,
		competencies:  competencyData,
		domains:       domainData,
		aspectByName:  make(map[string]Aspect, len(aspectData)),
		competencyKey: make(map[string]CompetencyLevel, len(competencyData)),
		requiredNames: make([]string, 0, len(aspectData)),
	}
	for _, a := range aspectData {
		t.aspectByName[strings.ToLower(a.Name)] = a
		t.requiredNames = append(t.requiredNames, a.Name)
	}
	for _, cl := range competencyData {
		t.competencyKey[competencyKey(cl.CompetencyAreaName, cl.SFIALevel)] = cl
	}
	return t
}

// Aspects returns the full aspect universe in canonical order.
func (t *Tables) Aspects() []Aspect { return t.aspects }

// CompetencyLevels returns the competency level table in declaration order.
func (t *Tables) CompetencyLevels() []CompetencyLevel { return t.competencies }

// Domains returns the supported domains.
func (t *Tables) Domains() []Domain { return t.domains }

// RequiredAspectNames returns the canonical names every evaluation must cover.
func (t *Tables) RequiredAspectNames() []string { return t.requiredNames }

// AspectByName resolves an aspect by case-insensitive name.
func (t *Tables) AspectByName(name string) (Aspect, bool) {
	a, ok := t.aspectByName[strings.ToLower(name)]
	return a, ok
}

// CompetencyFor looks up the level description for (area, score). A miss is
// expected for uncovered combinations and for non-integer scores.
func (t *Tables) CompetencyFor(areaName string, score float64) (CompetencyLevel, bool) {
	cl, ok := t.competencyKey[competencyKey(areaName, score)]
	return cl, ok
}

// FindDomain resolves a domain by case-insensitive trimmed name.
func (t *Tables) FindDomain(name string) (Domain, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, d := range t.domains {
		if strings.ToLower(d.Name) == needle {
			return d, true
		}
	}
	return Domain{}, false
}

// DomainNames lists the valid domain names in declaration order.
func (t *Tables) DomainNames() []string {
	names := make([]string, 0, len(t.domains))
	for _, d := range t.domains {
		names = append(names, d.Name)
	}
	return names
}

// competencyKey formats both int levels (index build) and float64 scores
// (lookups) the same way, so integral scores match and fractional ones miss.
func competencyKey(area string, level any) string {
	return fmt.Sprintf("%s::%v", strings.ToLower(area), level)
}
