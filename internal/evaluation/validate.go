package evaluation

import (
	"fmt"
	"strings"

	"mentor-backend/internal/refdata"
)

// Accepted field aliases, in priority order. First alias holding a non-empty
// string wins; the selected value is trimmed afterwards, so a whitespace-only
// high-priority alias still fails even when a lower-priority one is valid.
var (
	aspectAliases  = []string{"aspectName", "name", "competencyName"}
	commentAliases = []string{"comment", "feedback"}
)

// ValidateAndMap checks the raw interview history and joins each entry against
// the reference tables. Checks run in a fixed order and the first failure wins:
// per-item (identifier, known aspect, score range, comment presence), then
// set-level (completeness before duplicates). On success the mapped items are
// returned in input order.
func ValidateAndMap(tables *refdata.Tables, history []Item) ([]MappedItem, *ValidationError) {
	if len(history) == 0 {
		return nil, newValidationError(KindInvalidInterviewHistory,
			`Trường "interviewHistory" là bắt buộc và phải là một mảng không rỗng.`)
	}

	for _, item := range history {
		name := aspectIdentifier(item)
		if name == "" {
			return nil, newValidationError(KindInvalidInterviewItem,
				`Mỗi item trong interviewHistory phải có "aspectName", "name" hoặc "competencyName".`)
		}

		if _, ok := tables.AspectByName(name); !ok {
			return nil, newValidationError(KindInvalidAspect,
				fmt.Sprintf(`Aspect "%s" không hợp lệ. Vui lòng sử dụng tên aspect từ danh sách %d aspects.`,
					name, len(tables.Aspects())))
		}

		score, ok := item["score"].(float64)
		if !ok || score < 1 || score > 7 {
			return nil, newValidationError(KindInvalidScore,
				fmt.Sprintf(`Aspect "%s" phải có "score" là số từ 1 đến 7.`, name))
		}

		if !hasAnyKey(item, commentAliases) {
			return nil, newValidationError(KindMissingComment,
				fmt.Sprintf(`Aspect "%s" thiếu trường "comment" hoặc "feedback". Tất cả aspects đều phải có nhận xét.`, name))
		}
	}

	mapped, evaluatedNames := mapItems(tables, history)

	evaluated := make(map[string]struct{}, len(evaluatedNames))
	for _, name := range evaluatedNames {
		evaluated[name] = struct{}{}
	}

	required := tables.RequiredAspectNames()
	var missing []string
	for _, name := range required {
		if _, ok := evaluated[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		verr := newValidationError(KindIncompleteEvaluation,
			fmt.Sprintf("Thiếu đánh giá cho %d aspect(s). Tất cả %d aspects đều phải được đánh giá và có nhận xét.",
				len(missing), len(required)))
		verr.Fields = map[string]any{
			"missingAspects": missing,
			"totalRequired":  len(required),
			"totalEvaluated": len(evaluatedNames),
		}
		return nil, verr
	}

	if duplicates, extra := duplicateNames(evaluatedNames); len(duplicates) > 0 {
		verr := newValidationError(KindDuplicateEvaluation,
			fmt.Sprintf("Có %d aspect(s) bị đánh giá trùng lặp.", extra))
		verr.Fields = map[string]any{
			"duplicateAspects": duplicates,
		}
		return nil, verr
	}

	return mapped, nil
}

// mapItems joins each entry against the aspect and competency tables. Items
// have already passed per-item checks. Input order is preserved end-to-end; it
// determines the numbering shown to the model.
func mapItems(tables *refdata.Tables, history []Item) ([]MappedItem, []string) {
	mapped := make([]MappedItem, 0, len(history))
	evaluatedNames := make([]string, 0, len(history))

	for _, item := range history {
		aspect, _ := tables.AspectByName(aspectIdentifier(item))
		score, _ := item["score"].(float64)
		evaluatedNames = append(evaluatedNames, aspect.Name)

		m := MappedItem{
			AspectName:      aspect.Name,
			AspectRepresent: aspect.Represent,
			AspectDimension: aspect.Dimension,
			Score:           score,
			Comment:         commentValue(item),
		}
		if cl, ok := tables.CompetencyFor(aspect.Name, score); ok {
			m.CompetencyName = cl.Name
			m.CompetencyDescription = cl.Description
		} else {
			m.CompetencyName = synthesizedLabel(aspect.Name, score)
		}
		mapped = append(mapped, m)
	}

	return mapped, evaluatedNames
}

// synthesizedLabel builds the fallback competency label for (area, score)
// pairs the reference table does not cover.
func synthesizedLabel(aspectName string, score float64) string {
	base := strings.TrimSpace(strings.SplitN(aspectName, "(", 2)[0])
	return fmt.Sprintf("%s (Level %v)", base, score)
}

func aspectIdentifier(item Item) string {
	for _, key := range aspectAliases {
		if s, ok := item[key].(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func hasAnyKey(item Item, keys []string) bool {
	for _, key := range keys {
		if _, ok := item[key]; ok {
			return true
		}
	}
	return false
}

// commentValue returns the first non-null comment alias value. Presence is
// checked separately; a present-but-null alias falls through to the next one.
func commentValue(item Item) string {
	for _, key := range commentAliases {
		if v, ok := item[key]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
			return fmt.Sprint(v)
		}
	}
	return ""
}

// duplicateNames reports canonical names evaluated more than once. The first
// return is the deduplicated set in first-occurrence order; the second is the
// number of surplus occurrences, which drives the error message.
func duplicateNames(names []string) ([]string, int) {
	seen := make(map[string]int, len(names))
	var duplicates []string
	extra := 0
	for _, name := range names {
		seen[name]++
		switch seen[name] {
		case 1:
		case 2:
			duplicates = append(duplicates, name)
			extra++
		default:
			extra++
		}
	}
	return duplicates, extra
}
