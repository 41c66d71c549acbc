package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mentor-backend/internal/evaluation"
	"mentor-backend/internal/llm"
	"mentor-backend/internal/refdata"
)

// KindInvalidDomain is the error kind for a present-but-unresolvable domain.
const KindInvalidDomain = "INVALID_DOMAIN"

// Service orchestrates development-plan generation: validate and map the
// interview history, resolve the optional domain, build the prompt, invoke
// the model and recover a structured plan from its output.
type Service struct {
	LLM          llm.Client
	Tables       *refdata.Tables
	DefaultModel string
}

// Result carries the outcome of one plan generation.
type Result struct {
	Domain *refdata.Domain
	Model  string
	Prompt string
	Plan   json.RawMessage
}

// Generate produces a development plan. Validation errors come back as
// *evaluation.ValidationError; anything else is a provider failure. All
// client-input checks run before the provider is called, so invalid input
// never incurs provider cost.
func (s *Service) Generate(ctx context.Context, history []evaluation.Item, domainInput any, model string) (Result, error) {
	mapped, verr := evaluation.ValidateAndMap(s.Tables, history)
	if verr != nil {
		return Result{}, verr
	}

	domain, verr := s.resolveDomain(domainInput)
	if verr != nil {
		return Result{}, verr
	}

	if model == "" {
		model = s.DefaultModel
	}

	prompt := BuildPrompt(s.Tables.CompetencyLevels(), mapped, domain)
	text, err := s.LLM.GenerateText(ctx, model, prompt)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Domain: domain,
		Model:  model,
		Prompt: prompt,
		Plan:   ParseModelResponse(text),
	}, nil
}

// resolveDomain accepts a name string or an object exposing a name. An absent
// domain is valid (context-free plan); a present-but-unresolvable one is a
// client error enumerating the valid names.
func (s *Service) resolveDomain(input any) (*refdata.Domain, *evaluation.ValidationError) {
	if input == nil {
		return nil, nil
	}

	name := ""
	switch v := input.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		name = v
	case map[string]any:
		name, _ = v["name"].(string)
	}

	if name != "" {
		if d, ok := s.Tables.FindDomain(name); ok {
			return &d, nil
		}
	}

	return nil, &evaluation.ValidationError{
		Kind: KindInvalidDomain,
		Message: fmt.Sprintf(`Domain "%s" không hợp lệ. Vui lòng chọn một trong các domain: %s.`,
			name, strings.Join(s.Tables.DomainNames(), ", ")),
	}
}
