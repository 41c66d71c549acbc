package chat

import "fmt"

// Options configure the persona of the chat prompt.
type Options struct {
	Role     string `json:"role"`
	Language string `json:"language"`
}

const (
	defaultRole     = "trợ lý AI"
	defaultLanguage = "tiếng Việt"
)

const chatTemplate = `
Bạn là một %s thông minh, trả lời ngắn gọn, rõ ràng, dễ hiểu, bằng %s.

Yêu cầu của người dùng:
%s

Hãy trả lời trực tiếp, không cần giải thích lan man.
`

// BuildPrompt renders the fixed chat instruction template. It is a pure
// function: identical inputs always yield identical output, and the user text
// is interpolated verbatim, unescaped.
func BuildPrompt(userPrompt string, opts Options) string {
	role := opts.Role
	if role == "" {
		role = defaultRole
	}
	language := opts.Language
	if language == "" {
		language = defaultLanguage
	}
	return fmt.Sprintf(chatTemplate, role, language, userPrompt)
}
