package plan_test

import (
	"fmt"
	"strings"
	"testing"

	"mentor-backend/internal/evaluation"
	"mentor-backend/internal/plan"
	"mentor-backend/internal/refdata"
)

func mappedFixture(t *testing.T, tables *refdata.Tables) []evaluation.MappedItem {
	t.Helper()
	history := make([]evaluation.Item, 0, len(tables.Aspects()))
	for i, a := range tables.Aspects() {
		history = append(history, evaluation.Item{
			"aspectName": a.Name,
			"score":      float64(i%7 + 1),
			"comment":    fmt.Sprintf("nhận xét %d", i+1),
		})
	}
	mapped, verr := evaluation.ValidateAndMap(tables, history)
	if verr != nil {
		t.Fatalf("fixture should validate, got %s: %s", verr.Kind, verr.Message)
	}
	return mapped
}

func TestBuildPromptDeterministic(t *testing.T) {
	tables := refdata.NewTables()
	mapped := mappedFixture(t, tables)
	domain, _ := tables.FindDomain("Y tế")

	first := plan.BuildPrompt(tables.CompetencyLevels(), mapped, &domain)
	second := plan.BuildPrompt(tables.CompetencyLevels(), mapped, &domain)
	if first != second {
		t.Fatalf("prompt is not byte-identical across calls")
	}
}

func TestBuildPromptGenericPersona(t *testing.T) {
	tables := refdata.NewTables()
	mapped := mappedFixture(t, tables)

	prompt := plan.BuildPrompt(tables.CompetencyLevels(), mapped, nil)
	if !strings.Contains(prompt, "lĩnh vực phát triển năng lực AI") {
		t.Fatalf("expected generic mentor persona")
	}
	if strings.Contains(prompt, "## LĨNH VỰC ỨNG DỤNG:") {
		t.Fatalf("domain section must be absent without a domain")
	}
}

func TestBuildPromptDomainPersona(t *testing.T) {
	tables := refdata.NewTables()
	mapped := mappedFixture(t, tables)
	domain, ok := tables.FindDomain("Y tế")
	if !ok {
		t.Fatalf("expected Y tế domain in reference data")
	}

	prompt := plan.BuildPrompt(tables.CompetencyLevels(), mapped, &domain)
	for _, want := range []string{
		"lĩnh vực **Y tế**",
		"## LĨNH VỰC ỨNG DỤNG:",
		domain.Description,
		"ứng dụng AI trong y tế",
		"tập trung vào ứng dụng thực tế trong lĩnh vực y tế",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildPromptSections(t *testing.T) {
	tables := refdata.NewTables()
	mapped := mappedFixture(t, tables)

	prompt := plan.BuildPrompt(tables.CompetencyLevels(), mapped, nil)
	for _, want := range []string{
		"## DỮ LIỆU TIÊU CHÍ GỐC (Thang điểm 1-7):",
		"## KẾT QUẢ ĐÁNH GIÁ INTERVIEW:",
		"## YÊU CẦU PHÂN TÍCH:",
		"## HƯỚNG DẪN PHÂN TÍCH:",
		`"swotAnalysis"`,
		`"actionPlan"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}

	// Items are numbered 1..n in input order.
	for i, m := range mapped {
		header := fmt.Sprintf("### %d. %s", i+1, m.AspectName)
		if !strings.Contains(prompt, header) {
			t.Fatalf("expected prompt to contain %q", header)
		}
	}
	if !strings.Contains(prompt, "- Điểm đánh giá: 1/7") {
		t.Fatalf("expected integral scores rendered without decimals")
	}
}

func TestBuildPromptEmptyCommentPlaceholder(t *testing.T) {
	tables := refdata.NewTables()
	mapped := mappedFixture(t, tables)
	mapped[0].Comment = ""

	prompt := plan.BuildPrompt(tables.CompetencyLevels(), mapped, nil)
	if !strings.Contains(prompt, "- Nhận xét: Không có nhận xét") {
		t.Fatalf("expected placeholder for empty comment")
	}
}
