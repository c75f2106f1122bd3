package copywriter

import "strings"

// tone applied when the client does not supply one
const defaultTone = "persuasive"

// checks and normalizes a generation request. All string fields are trimmed,
// tone falls back to the default, and the platform is canonicalized. Returns
// a *ValidationError listing every missing required field. Pure: runs before
// any quota check or external call, so malformed input never consumes quota.
func Validate(raw Request) (Request, error) {
	req := Request{
		Product:     strings.TrimSpace(raw.Product),
		Audience:    strings.TrimSpace(raw.Audience),
		USP:         strings.TrimSpace(raw.USP),
		Tone:        strings.TrimSpace(raw.Tone),
		Platform:    strings.ToLower(strings.TrimSpace(raw.Platform)),
		Location:    strings.TrimSpace(raw.Location),
		Demographic: strings.TrimSpace(raw.Demographic),
		Keywords:    strings.TrimSpace(raw.Keywords),
	}

	var missing []string

	if req.Product == "" {
		missing = append(missing, "product")
	}

	if req.Audience == "" {
		missing = append(missing, "audience")
	}

	if req.USP == "" {
		missing = append(missing, "usp")
	}

	if len(missing) > 0 {
		return Request{}, &ValidationError{Missing: missing}
	}

	if req.Tone == "" {
		req.Tone = defaultTone
	}

	if _, known := headlineLimits[Platform(req.Platform)]; !known {
		req.Platform = string(PlatformGeneric)
	}

	return req, nil
}
