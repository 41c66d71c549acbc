package plan_test

import (
	"encoding/json"
	"testing"

	"mentor-backend/internal/plan"
)

func TestParseModelResponseFencedBlock(t *testing.T) {
	for _, text := range []string{
		"```json\n{\"summary\": \"ok\"}\n```",
		"```\n{\"summary\": \"ok\"}\n```",
		"Đây là kết quả:\n```json\n{\"summary\": \"ok\"}\n```\nHết.",
	} {
		raw := plan.ParseModelResponse(text)
		var got map[string]any
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal result for %q: %v", text, err)
		}
		if got["summary"] != "ok" {
			t.Fatalf("expected fenced object for %q, got %s", text, raw)
		}
	}
}

func TestParseModelResponseBraceRegion(t *testing.T) {
	text := `Dưới đây là lộ trình. {"summary": "ok", "shortTermGoals": []} Chúc may mắn.`
	raw := plan.ParseModelResponse(text)

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if got["summary"] != "ok" {
		t.Fatalf("expected brace region extracted, got %s", raw)
	}
	if _, ok := got["rawResponse"]; ok {
		t.Fatalf("expected structured parse, got fallback: %s", raw)
	}
}

func TestParseModelResponseWholeText(t *testing.T) {
	text := `{"summary": "ok"}`
	raw := plan.ParseModelResponse(text)
	if string(raw) != text {
		t.Fatalf("expected verbatim object, got %s", raw)
	}
}

func TestParseModelResponseFallback(t *testing.T) {
	for _, text := range []string{
		"Xin lỗi, tôi không thể tạo lộ trình lúc này.",
		"```json\n{\"summary\": \n```",
		"",
	} {
		raw := plan.ParseModelResponse(text)
		var got map[string]string
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal fallback for %q: %v", text, err)
		}
		if got["rawResponse"] != text {
			t.Fatalf("expected rawResponse to carry %q verbatim, got %q", text, got["rawResponse"])
		}
	}
}
