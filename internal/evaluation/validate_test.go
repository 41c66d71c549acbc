package evaluation_test

import (
	"encoding/json"
	"testing"

	"mentor-backend/internal/evaluation"
	"mentor-backend/internal/refdata"
)

func decodeItems(t *testing.T, raw string) []evaluation.Item {
	t.Helper()
	var items []evaluation.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	return items
}

// fullHistory builds one valid entry per required aspect, scores cycling 1..7.
func fullHistory(tables *refdata.Tables) []evaluation.Item {
	aspects := tables.Aspects()
	items := make([]evaluation.Item, 0, len(aspects))
	for i, a := range aspects {
		items = append(items, evaluation.Item{
			"aspectName": a.Name,
			"score":      float64(i%7 + 1),
			"feedback":   "nhận xét",
		})
	}
	return items
}

func TestValidateAndMapFullUniverse(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)

	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("expected no error, got %s: %s", verr.Kind, verr.Message)
	}
	if len(mapped) != len(history) {
		t.Fatalf("expected %d mapped items, got %d", len(history), len(mapped))
	}
	for i, a := range tables.Aspects() {
		if mapped[i].AspectName != a.Name {
			t.Fatalf("order not preserved at %d: got %q, want %q", i, mapped[i].AspectName, a.Name)
		}
	}
}

func TestValidateAndMapCaseInsensitiveNames(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)
	history[0]["aspectName"] = "tư duy phản biện (critical thinking)"

	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("expected no error, got %s: %s", verr.Kind, verr.Message)
	}
	if got := mapped[0].AspectName; got != "Tư duy phản biện (Critical Thinking)" {
		t.Fatalf("expected canonical aspect name, got %q", got)
	}
}

func TestValidateAndMapEmptyHistory(t *testing.T) {
	tables := refdata.NewTables()

	for _, history := range [][]evaluation.Item{nil, {}} {
		_, verr := evaluation.ValidateAndMap(tables, history)
		if verr == nil || verr.Kind != evaluation.KindInvalidInterviewHistory {
			t.Fatalf("expected INVALID_INTERVIEW_HISTORY, got %+v", verr)
		}
	}
}

func TestValidateAndMapMissingIdentifier(t *testing.T) {
	tables := refdata.NewTables()

	items := decodeItems(t, `[{"score": 5, "comment": "ok"}]`)
	_, verr := evaluation.ValidateAndMap(tables, items)
	if verr == nil || verr.Kind != evaluation.KindInvalidInterviewItem {
		t.Fatalf("expected INVALID_INTERVIEW_ITEM, got %+v", verr)
	}

	// A whitespace-only high-priority alias wins selection and then fails,
	// even though a valid lower-priority alias is present.
	items = decodeItems(t, `[{"aspectName": "   ", "name": "Học máy (Machine Learning)", "score": 5, "comment": "ok"}]`)
	_, verr = evaluation.ValidateAndMap(tables, items)
	if verr == nil || verr.Kind != evaluation.KindInvalidInterviewItem {
		t.Fatalf("expected INVALID_INTERVIEW_ITEM for blank aspectName, got %+v", verr)
	}
}

func TestValidateAndMapAliasPriority(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)
	delete(history[1], "aspectName")
	history[1]["competencyName"] = "Giải quyết vấn đề (Problem Solving)"

	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("expected no error, got %s: %s", verr.Kind, verr.Message)
	}
	if mapped[1].AspectName != "Giải quyết vấn đề (Problem Solving)" {
		t.Fatalf("expected competencyName alias to resolve, got %q", mapped[1].AspectName)
	}
}

func TestValidateAndMapUnknownAspect(t *testing.T) {
	tables := refdata.NewTables()

	items := decodeItems(t, `[{"aspectName": "Nấu ăn", "score": 5, "comment": "ok"}]`)
	_, verr := evaluation.ValidateAndMap(tables, items)
	if verr == nil || verr.Kind != evaluation.KindInvalidAspect {
		t.Fatalf("expected INVALID_ASPECT, got %+v", verr)
	}
}

func TestValidateAndMapScoreBounds(t *testing.T) {
	tables := refdata.NewTables()

	for _, raw := range []string{
		`[{"aspectName": "Học máy (Machine Learning)", "score": 0, "comment": "ok"}]`,
		`[{"aspectName": "Học máy (Machine Learning)", "score": 8, "comment": "ok"}]`,
		`[{"aspectName": "Học máy (Machine Learning)", "score": "5", "comment": "ok"}]`,
		`[{"aspectName": "Học máy (Machine Learning)", "comment": "ok"}]`,
	} {
		_, verr := evaluation.ValidateAndMap(tables, decodeItems(t, raw))
		if verr == nil || verr.Kind != evaluation.KindInvalidScore {
			t.Fatalf("expected INVALID_SCORE for %s, got %+v", raw, verr)
		}
	}

	// Boundary scores 1 and 7 are accepted.
	history := fullHistory(tables)
	history[0]["score"] = float64(1)
	history[1]["score"] = float64(7)
	if _, verr := evaluation.ValidateAndMap(tables, history); verr != nil {
		t.Fatalf("expected boundary scores to pass, got %s", verr.Kind)
	}
}

func TestValidateAndMapMissingComment(t *testing.T) {
	tables := refdata.NewTables()

	items := decodeItems(t, `[{"aspectName": "Học máy (Machine Learning)", "score": 5}]`)
	_, verr := evaluation.ValidateAndMap(tables, items)
	if verr == nil || verr.Kind != evaluation.KindMissingComment {
		t.Fatalf("expected MISSING_COMMENT, got %+v", verr)
	}

	// Presence is checked, not content: an empty string comment is accepted.
	history := fullHistory(tables)
	delete(history[0], "feedback")
	history[0]["comment"] = ""
	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("expected empty comment to pass, got %s", verr.Kind)
	}
	if mapped[0].Comment != "" {
		t.Fatalf("expected empty comment, got %q", mapped[0].Comment)
	}
}

func TestValidateAndMapIncompleteEvaluation(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)
	omitted := history[3]["aspectName"].(string)
	history = append(history[:3], history[4:]...)

	_, verr := evaluation.ValidateAndMap(tables, history)
	if verr == nil || verr.Kind != evaluation.KindIncompleteEvaluation {
		t.Fatalf("expected INCOMPLETE_EVALUATION, got %+v", verr)
	}
	missing, ok := verr.Fields["missingAspects"].([]string)
	if !ok || len(missing) != 1 || missing[0] != omitted {
		t.Fatalf("expected missingAspects [%q], got %v", omitted, verr.Fields["missingAspects"])
	}
	if verr.Fields["totalRequired"] != len(tables.Aspects()) {
		t.Fatalf("unexpected totalRequired: %v", verr.Fields["totalRequired"])
	}
	if verr.Fields["totalEvaluated"] != len(history) {
		t.Fatalf("unexpected totalEvaluated: %v", verr.Fields["totalEvaluated"])
	}
}

func TestValidateAndMapDuplicateEvaluation(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)
	dup := history[2]["aspectName"].(string)
	// Triplicate one aspect; the reported set must still name it once.
	history = append(history, evaluation.Item{"aspectName": dup, "score": float64(4), "comment": "x"},
		evaluation.Item{"aspectName": dup, "score": float64(2), "comment": "y"})

	_, verr := evaluation.ValidateAndMap(tables, history)
	if verr == nil || verr.Kind != evaluation.KindDuplicateEvaluation {
		t.Fatalf("expected DUPLICATE_EVALUATION, got %+v", verr)
	}
	duplicates, ok := verr.Fields["duplicateAspects"].([]string)
	if !ok || len(duplicates) != 1 || duplicates[0] != dup {
		t.Fatalf("expected duplicateAspects [%q], got %v", dup, verr.Fields["duplicateAspects"])
	}
}

func TestValidateAndMapCompetencyResolution(t *testing.T) {
	tables := refdata.NewTables()
	history := fullHistory(tables)
	for _, item := range history {
		item["score"] = float64(3)
	}

	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("expected no error, got %s", verr.Kind)
	}

	byName := make(map[string]evaluation.MappedItem, len(mapped))
	for _, m := range mapped {
		byName[m.AspectName] = m
	}

	// (Học máy, 3) is covered by the reference table.
	got := byName["Học máy (Machine Learning)"]
	if got.CompetencyName != "Huấn luyện mô hình độc lập" {
		t.Fatalf("expected table hit for Học máy level 3, got %q", got.CompetencyName)
	}
	if got.CompetencyDescription == "" {
		t.Fatalf("expected a description for a table hit")
	}

	// (Làm việc nhóm, 3) is not covered; the label is synthesized.
	got = byName["Làm việc nhóm (Teamwork)"]
	if got.CompetencyName != "Làm việc nhóm (Level 3)" {
		t.Fatalf("expected synthesized label, got %q", got.CompetencyName)
	}
	if got.CompetencyDescription != "" {
		t.Fatalf("expected empty description for synthesized label, got %q", got.CompetencyDescription)
	}
}
