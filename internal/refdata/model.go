package refdata

// Aspect is one of the fixed evaluation dimensions every interview must cover.
type Aspect struct {
	Name                  string  `json:"name"`
	Represent             string  `json:"represent"`
	Dimension             string  `json:"dimension"`
	Description           string  `json:"description"`
	WeightWithinDimension float64 `json:"weightWithinDimension"`
}

// CompetencyLevel describes what a given SFIA score means for a competency area.
// The table is intentionally sparse; a missing (area, level) pair is not an
// error — callers synthesize a label instead.
type CompetencyLevel struct {
	CompetencyAreaName string `json:"competencyAreaName"`
	SFIALevel          int    `json:"sfiaLevel"`
	Name               string `json:"name"`
	Description        string `json:"description"`
}

// Domain is an optional industry context that colors prompt wording.
type Domain struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
