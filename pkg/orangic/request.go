package orangic

import "github.com/orangic/orangic-go/pkg/api"

// CompletionRequest holds the parameters for a chat completion.
//
// Messages accepts api.Message values, *api.Message pointers, or raw
// mappings (map[string]any / map[string]string). Message values are
// normalized to {role, content} records; raw mappings pass through to
// the payload unchanged.
//
// Pointer fields distinguish "not set" from an explicit zero: nil
// Temperature means the 1.0 default, nil MaxTokens means the field is
// absent from the payload entirely.
type CompletionRequest struct {
	Model    string
	Messages []any

	// Sampling parameters. Always present in the payload, with
	// defaults 1.0, 1.0, 0.0, 0.0 respectively when nil.
	Temperature      *float64
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64

	// Optional parameters, omitted from the payload when not set.
	MaxTokens *int
	Stop      any // string or []string
	Reasoning any // string or int reasoning effort

	Stream bool

	// Extra fields are merged into the payload verbatim after the
	// structural fields; on key collision the Extra value wins.
	Extra map[string]any
}

// payload assembles the JSON-serializable request body. The builder
// performs no validation; the server rejects bad requests.
func (r *CompletionRequest) payload() map[string]any {
	p := map[string]any{
		"model":             r.Model,
		"messages":          normalizeMessages(r.Messages),
		"temperature":       orDefault(r.Temperature, 1.0),
		"top_p":             orDefault(r.TopP, 1.0),
		"frequency_penalty": orDefault(r.FrequencyPenalty, 0.0),
		"presence_penalty":  orDefault(r.PresencePenalty, 0.0),
		"stream":            r.Stream,
	}

	if r.MaxTokens != nil {
		p["max_tokens"] = *r.MaxTokens
	}
	if r.Stop != nil {
		p["stop"] = r.Stop
	}
	if r.Reasoning != nil {
		p["reasoning"] = r.Reasoning
	}

	for k, v := range r.Extra {
		p[k] = v
	}
	return p
}

// normalizeMessages converts typed messages to their wire records.
// Anything that is not an api.Message passes through unchanged.
func normalizeMessages(messages []any) []any {
	formatted := make([]any, 0, len(messages))
	for _, m := range messages {
		switch msg := m.(type) {
		case api.Message:
			formatted = append(formatted, msg.ToMap())
		case *api.Message:
			formatted = append(formatted, msg.ToMap())
		default:
			formatted = append(formatted, m)
		}
	}
	return formatted
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
