package copywriter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// target ad platform, drives platform-specific copy constraints
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformGoogle    Platform = "google"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
	PlatformGeneric   Platform = "generic"
)

// contains the raw generation request fields as submitted by the client
type Request struct {
	Product     string `json:"product"`
	Audience    string `json:"audience"`
	USP         string `json:"usp"`
	Tone        string `json:"tone"`
	Platform    string `json:"platform"`
	Location    string `json:"location"`
	Demographic string `json:"demographic"`
	Keywords    string `json:"keywords"`
}

// the canonical parsed generation result. Immutable once returned.
type Copy struct {
	Headline          string     `json:"headline"`
	Body              string     `json:"body"`
	CallToAction      string     `json:"callToAction"`
	Targeting         *Targeting `json:"targeting,omitempty"`
	RecommendedBudget string     `json:"recommendedBudget,omitempty"`
}

// structured targeting suggestion returned alongside the copy
type Targeting struct {
	Radius      FlexString `json:"radius,omitempty"`
	Demographic string     `json:"demographic,omitempty"`
	Keywords    StringList `json:"keywords,omitempty"`
}

// a string field that models sometimes return as a bare number
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}

	return fmt.Errorf("value is neither string nor number")
}

// a keyword list that models return either as an array or comma-separated
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("value is neither list nor string")
	}

	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	*l = out
	return nil
}

// reported when required request fields are missing or empty
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// builds the per-field detail map for the 400 response body: a message for
// each missing field, nil for fields that passed
func (e *ValidationError) FieldDetails() map[string]any {
	details := map[string]any{
		"product":  nil,
		"audience": nil,
		"usp":      nil,
	}

	messages := map[string]string{
		"product":  "Product is required",
		"audience": "Target audience is required",
		"usp":      "Unique selling points are required",
	}

	for _, field := range e.Missing {
		details[field] = messages[field]
	}

	return details
}

// reported when the generation service returned well-formed text that does
// not contain all required copy fields
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return "generation response missing required fields: " + strings.Join(e.Missing, ", ")
}
