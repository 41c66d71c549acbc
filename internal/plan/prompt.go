package plan

import (
	"fmt"
	"strings"

	"mentor-backend/internal/evaluation"
	"mentor-backend/internal/refdata"
)

// BuildPrompt renders the full development-plan instruction for the model:
// the competency reference table grouped by area, the numbered evaluation
// items in input order, the mentor persona (domain-specific when a domain is
// present) and the fixed output-format specification. Deterministic — no
// randomness, no hidden state.
func BuildPrompt(levels []refdata.CompetencyLevel, items []evaluation.MappedItem, domain *refdata.Domain) string {
	var b strings.Builder
	b.WriteString(mentorRole(domain))
	b.WriteString("\n\nNhiệm vụ của bạn là phân tích kết quả đánh giá từ một mentor khác (cũng là người có kinh nghiệm cao trong lĩnh vực này) và đưa ra lộ trình phát triển cá nhân chi tiết, thực tế và có thể thực hiện được.")
	b.WriteString(domainContext(domain))
	b.WriteString("\n\n## DỮ LIỆU TIÊU CHÍ GỐC (Thang điểm 1-7):\n\n")
	b.WriteString(renderCompetencyAreas(levels))
	b.WriteString("\n\n## KẾT QUẢ ĐÁNH GIÁ INTERVIEW:\n\n")
	b.WriteString(renderItems(items))
	b.WriteString("\n\n## YÊU CẦU PHÂN TÍCH:\n\n")
	b.WriteString(outputFormatSpec)
	b.WriteString("\n\n## HƯỚNG DẪN PHÂN TÍCH:\n\n")
	b.WriteString(renderGuidance(domain))
	return b.String()
}

func mentorRole(domain *refdata.Domain) string {
	if domain == nil {
		return "Bạn là một mentor chuyên nghiệp và giàu kinh nghiệm trong lĩnh vực phát triển năng lực AI, với nhiều năm kinh nghiệm trong việc đánh giá, phát triển và hướng dẫn các chuyên gia AI."
	}
	lower := strings.ToLower(domain.Name)
	return fmt.Sprintf("Bạn là một mentor chuyên nghiệp và có kinh nghiệm cao trong lĩnh vực **%s**, đặc biệt là việc ứng dụng AI trong %s. Bạn đã có nhiều năm kinh nghiệm làm việc, nghiên cứu và phát triển các giải pháp AI trong %s, hiểu rõ các thách thức, cơ hội và xu hướng trong lĩnh vực này.",
		domain.Name, lower, lower)
}

func domainContext(domain *refdata.Domain) string {
	if domain == nil {
		return ""
	}
	return fmt.Sprintf("\n## LĨNH VỰC ỨNG DỤNG:\n\nLộ trình phát triển này được tạo cho lĩnh vực **%s**.\n\nMô tả lĩnh vực: %s\n\n",
		domain.Name, domain.Description)
}

// renderCompetencyAreas groups the level table by competency area, preserving
// first-appearance order so the prompt is byte-identical across calls.
func renderCompetencyAreas(levels []refdata.CompetencyLevel) string {
	type area struct {
		name  string
		lines []string
	}
	areaIdx := make(map[string]int)
	var areas []area
	for _, cl := range levels {
		line := fmt.Sprintf("- Level %d: %s\n  Mô tả: %s", cl.SFIALevel, cl.Name, cl.Description)
		idx, ok := areaIdx[cl.CompetencyAreaName]
		if !ok {
			areaIdx[cl.CompetencyAreaName] = len(areas)
			areas = append(areas, area{name: cl.CompetencyAreaName, lines: []string{line}})
			continue
		}
		areas[idx].lines = append(areas[idx].lines, line)
	}

	sections := make([]string, 0, len(areas))
	for _, a := range areas {
		sections = append(sections, fmt.Sprintf("### %s\n%s", a.name, strings.Join(a.lines, "\n")))
	}
	return strings.Join(sections, "\n\n")
}

// renderItems lists every evaluation item, 1-indexed in input order. Feedback
// is never silently omitted: an empty comment renders an explicit placeholder.
func renderItems(items []evaluation.MappedItem) string {
	sections := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "### %d. %s", i+1, item.AspectName)
		if item.AspectRepresent != "" {
			fmt.Fprintf(&b, " (%s)", item.AspectRepresent)
		}
		if item.AspectDimension != "" {
			fmt.Fprintf(&b, " - %s", item.AspectDimension)
		}
		fmt.Fprintf(&b, "\n- Competency Level: %s", item.CompetencyName)
		if item.CompetencyDescription != "" {
			fmt.Fprintf(&b, "\n  %s", item.CompetencyDescription)
		}
		fmt.Fprintf(&b, "\n- Điểm đánh giá: %v/7", item.Score)
		comment := item.Comment
		if comment == "" {
			comment = "Không có nhận xét"
		}
		fmt.Fprintf(&b, "\n- Nhận xét: %s", comment)
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

const outputFormatSpec = `Hãy phân tích và đưa ra lộ trình phát triển cá nhân với định dạng JSON sau (trả lời bằng tiếng Việt):

{
  "swotAnalysis": {
    "strengths": [
      "Liệt kê các điểm mạnh dựa trên các tiêu chí có điểm cao (>= 5)",
      "Mỗi điểm mạnh nên kèm theo giải thích ngắn gọn"
    ],
    "weaknesses": [
      "Liệt kê các điểm yếu dựa trên các tiêu chí có điểm thấp (< 4)",
      "Mỗi điểm yếu nên kèm theo giải thích và tác động"
    ],
    "opportunities": [
      "Cơ hội phát triển dựa trên điểm mạnh hiện tại",
      "Cơ hội từ xu hướng công nghệ AI",
      "Cơ hội từ các tiêu chí có tiềm năng cải thiện"
    ],
    "threats": [
      "Thách thức từ các điểm yếu",
      "Thách thức từ môi trường làm việc",
      "Thách thức từ sự thay đổi công nghệ"
    ]
  },
  "shortTermGoals": [
    {
      "title": "Tiêu đề mục tiêu",
      "description": "Mô tả chi tiết mục tiêu",
      "targetCompetencies": ["Tên các tiêu chí liên quan"],
      "timeline": "Thời gian dự kiến (ví dụ: 3-6 tháng)",
      "priority": "Cao/Trung bình/Thấp"
    }
  ],
  "longTermGoals": [
    {
      "title": "Tiêu đề mục tiêu",
      "description": "Mô tả chi tiết mục tiêu",
      "targetCompetencies": ["Tên các tiêu chí liên quan"],
      "timeline": "Thời gian dự kiến (ví dụ: 1-2 năm)",
      "priority": "Cao/Trung bình/Thấp"
    }
  ],
  "actionPlan": [
    {
      "action": "Hành động cụ thể",
      "competencyArea": "Tên lĩnh vực năng lực",
      "targetLevel": "Level mục tiêu (1-7)",
      "currentLevel": "Level hiện tại",
      "steps": [
        "Bước 1: Mô tả cụ thể",
        "Bước 2: Mô tả cụ thể"
      ],
      "resources": ["Tài liệu, khóa học, công cụ gợi ý"],
      "timeline": "Thời gian thực hiện",
      "successCriteria": "Tiêu chí đánh giá thành công"
    }
  ],
  "summary": "Tóm tắt tổng quan về tình trạng hiện tại và định hướng phát triển"
}`

// renderGuidance writes the closing analysis instructions. Every sentence that
// references "the field" gains a domain insert when a domain is present.
func renderGuidance(domain *refdata.Domain) string {
	var inField, spaceLower, inLower, focusLower string
	if domain != nil {
		lower := strings.ToLower(domain.Name)
		inField = fmt.Sprintf(" trong lĩnh vực %s", domain.Name)
		spaceLower = " " + lower
		inLower = " trong " + lower
		focusLower = fmt.Sprintf(", tập trung vào ứng dụng thực tế trong lĩnh vực %s", lower)
	}

	return fmt.Sprintf(`Với tư cách là một mentor có kinh nghiệm cao%s, hãy:

1. **Phân tích SWOT sâu sắc**:
   - Dựa trên kinh nghiệm thực tế của bạn trong lĩnh vực%s, đánh giá các điểm mạnh/yếu một cách chính xác
   - Xác định các cơ hội và thách thức dựa trên xu hướng thực tế của ngành%s
   - Đưa ra nhận định dựa trên các case studies và best practices bạn đã trải nghiệm

2. **Định hướng phát triển thực tế**:
   - Đưa ra các mục tiêu ngắn hạn và dài hạn dựa trên lộ trình phát triển thực tế trong ngành%s
   - Ưu tiên các kỹ năng và năng lực quan trọng nhất cho sự nghiệp trong lĩnh vực%s
   - Xem xét các yêu cầu thực tế của thị trường lao động%s

3. **Kế hoạch hành động cụ thể**:
   - Đưa ra các bước hành động cụ thể, có thể thực hiện được ngay
   - Gợi ý các tài liệu, khóa học, công cụ thực tế mà bạn biết là hiệu quả%s
   - Đề xuất các dự án thực tế hoặc case studies để thực hành%s
   - Đưa ra timeline thực tế dựa trên kinh nghiệm của bạn

4. **Lưu ý quan trọng**:
   - Phân tích phải dựa trên so sánh điểm đánh giá với thang điểm tối đa (7) và mô tả của từng level
   - Đưa ra các gợi ý cụ thể, có thể thực hiện được%s
   - Ưu tiên các tiêu chí có điểm thấp nhưng quan trọng cho sự nghiệp%s
   - Cân bằng giữa phát triển điểm mạnh và cải thiện điểm yếu
   - Sử dụng kinh nghiệm thực tế của bạn để đưa ra các ví dụ và case studies cụ thể%s
   - Trả lời hoàn toàn bằng tiếng Việt, định dạng JSON hợp lệ`,
		inField, spaceLower, inLower, spaceLower, spaceLower, inLower, inLower, inLower, focusLower, inLower, inLower)
}
