package copywriter

import (
	"encoding/json"
	"strings"
)

// parses raw model output into the canonical Copy schema. JSON is tried
// first; labeled-text output ("Headline: ...") is accepted as a fallback.
// Field-name variants across prompt formats (cta vs call_to_action vs
// callToAction) are normalized here, before the result crosses the package
// boundary. A response missing headline, body, or call to action is a
// *FormatError, never a Copy with empty strings.
func ParseResponse(text string) (*Copy, error) {
	text = stripCodeFences(text)

	if c, ok := parseJSON(text); ok {
		return validateCopy(c)
	}

	return validateCopy(parseLabeledSections(text))
}

// accepted field-name variants for the JSON response shape
type rawCopy struct {
	Headline string `json:"headline"`

	Body       string `json:"body"`
	AdCopy     string `json:"ad_copy"`
	AdCopyAlt  string `json:"adCopy"`
	BodyCopy   string `json:"body_copy"`
	AdBodyCopy string `json:"ad_body_copy"`

	CTA       string `json:"cta"`
	CallSnake string `json:"call_to_action"`
	CallCamel string `json:"callToAction"`

	Targeting *Targeting `json:"targeting"`

	BudgetSnake string `json:"recommended_budget"`
	BudgetCamel string `json:"recommendedBudget"`
}

func parseJSON(text string) (*Copy, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')

	if start == -1 || end <= start {
		return nil, false
	}

	var raw rawCopy
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, false
	}

	return &Copy{
		Headline:          strings.TrimSpace(raw.Headline),
		Body:              firstNonEmpty(raw.Body, raw.AdCopy, raw.AdCopyAlt, raw.BodyCopy, raw.AdBodyCopy),
		CallToAction:      firstNonEmpty(raw.CallSnake, raw.CallCamel, raw.CTA),
		Targeting:         raw.Targeting,
		RecommendedBudget: firstNonEmpty(raw.BudgetSnake, raw.BudgetCamel),
	}, true
}

// section labels accepted in free-text model output
var sectionLabels = map[string]string{
	"headline":       "headline",
	"ad copy":        "body",
	"body":           "body",
	"ad body copy":   "body",
	"call to action": "cta",
	"cta":            "cta",
}

// parses "Headline: ..." style output into copy fields. Labels may carry
// their content on the same line or on the following lines.
func parseLabeledSections(text string) *Copy {
	sections := map[string][]string{}
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if label, rest, ok := matchLabel(line); ok {
			current = label

			if rest != "" {
				sections[current] = append(sections[current], rest)
			}

			continue
		}

		if current != "" && line != "" {
			sections[current] = append(sections[current], line)
		}
	}

	return &Copy{
		Headline:     strings.Join(sections["headline"], " "),
		Body:         strings.Join(sections["body"], " "),
		CallToAction: strings.Join(sections["cta"], " "),
	}
}

// checks whether a line starts a labeled section, returning the canonical
// label and any same-line content
func matchLabel(line string) (label, rest string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx == -1 {
		return "", "", false
	}

	name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line[:idx], "**")))

	canonical, known := sectionLabels[name]
	if !known {
		return "", "", false
	}

	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[idx+1:]), "**"))

	return canonical, rest, true
}

// enforces the required-field invariant on a parsed copy
func validateCopy(c *Copy) (*Copy, error) {
	var missing []string

	if c.Headline == "" {
		missing = append(missing, "headline")
	}

	if c.Body == "" {
		missing = append(missing, "body")
	}

	if c.CallToAction == "" {
		missing = append(missing, "callToAction")
	}

	if len(missing) > 0 {
		return nil, &FormatError{Missing: missing}
	}

	return c, nil
}

// removes markdown code fences some models wrap around JSON output
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
