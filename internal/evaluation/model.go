package evaluation

// Item is one raw interview evaluation entry as decoded from the request JSON.
// It stays a map because the accepted-input contract is alias-based: the aspect
// identifier may arrive under "aspectName", "name" or "competencyName", and the
// feedback under "comment" or "feedback". Presence of a key matters, not just
// its value.
type Item map[string]any

// MappedItem is an evaluation entry joined against the reference tables. It is
// built fresh per request and consumed only by the prompt builder.
type MappedItem struct {
	AspectName            string
	AspectRepresent       string
	AspectDimension       string
	Score                 float64
	Comment               string
	CompetencyName        string
	CompetencyDescription string
}

// Validation error kinds. These are part of the API contract and must stay stable.
const (
	KindInvalidInterviewHistory = "INVALID_INTERVIEW_HISTORY"
	KindInvalidInterviewItem    = "INVALID_INTERVIEW_ITEM"
	KindInvalidAspect           = "INVALID_ASPECT"
	KindInvalidScore            = "INVALID_SCORE"
	KindMissingComment          = "MISSING_COMMENT"
	KindIncompleteEvaluation    = "INCOMPLETE_EVALUATION"
	KindDuplicateEvaluation     = "DUPLICATE_EVALUATION"
)

// ValidationError carries a stable machine-readable kind, a human message and
// optional kind-specific payload fields.
type ValidationError struct {
	Kind    string
	Message string
	Fields  map[string]any
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}
