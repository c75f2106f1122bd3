package copywriter

import (
	"fmt"
	"strings"
)

// per-platform headline character budgets. Generic covers unknown platforms.
var headlineLimits = map[Platform]int{
	PlatformFacebook:  40,
	PlatformGoogle:    30,
	PlatformInstagram: 40,
	PlatformLinkedIn:  70,
	PlatformTikTok:    40,
	PlatformGeneric:   60,
}

// returns the system prompt for ad copy generation
func SystemPrompt() string {
	return "You are an expert copywriter specializing in creating high-converting ad copy. " +
		"Your responses should be concise, compelling, and formatted as JSON."
}

// builds the user prompt for a validated generation request
func BuildPrompt(req Request) string {
	platform := Platform(req.Platform)

	limit, ok := headlineLimits[platform]
	if !ok {
		platform = PlatformGeneric
		limit = headlineLimits[PlatformGeneric]
	}

	var b strings.Builder

	b.WriteString("Create a compelling ad copy for the following:\n")
	fmt.Fprintf(&b, "Product/Service: %s\n", req.Product)
	fmt.Fprintf(&b, "Target Audience: %s\n", req.Audience)
	fmt.Fprintf(&b, "Unique Selling Points: %s\n", req.USP)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)

	if platform != PlatformGeneric {
		fmt.Fprintf(&b, "Ad Platform: %s\n", platform)
	}

	if req.Location != "" {
		fmt.Fprintf(&b, "Business Location: %s\n", req.Location)
	}

	if req.Demographic != "" {
		fmt.Fprintf(&b, "Target Demographic: %s\n", req.Demographic)
	}

	if req.Keywords != "" {
		fmt.Fprintf(&b, "Keywords to work in: %s\n", req.Keywords)
	}

	b.WriteString("\nPlease provide:\n")
	fmt.Fprintf(&b, "1. A catchy headline (max %d characters)\n", limit)
	b.WriteString("2. Ad body copy (max 90 words)\n")
	b.WriteString("3. A strong call to action (max 30 characters)\n")
	b.WriteString("4. A targeting suggestion (radius, demographic, keyword list)\n")
	b.WriteString("5. A recommended daily budget range\n")

	b.WriteString("\nFormat the response as a JSON object with \"headline\", \"body\", " +
		"\"call_to_action\", \"targeting\" ({\"radius\", \"demographic\", \"keywords\"}) " +
		"and \"recommended_budget\" fields. Return ONLY valid JSON, no markdown or explanations.")

	return b.String()
}
