package copywriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_IncludesFields(t *testing.T) {
	prompt := BuildPrompt(Request{
		Product:  "Acme Widget",
		Audience: "homeowners",
		USP:      "30% cheaper",
		Tone:     "friendly",
		Platform: "facebook",
		Location: "Austin, TX",
		Keywords: "widgets, diy",
	})

	assert.Contains(t, prompt, "Product/Service: Acme Widget")
	assert.Contains(t, prompt, "Target Audience: homeowners")
	assert.Contains(t, prompt, "Unique Selling Points: 30% cheaper")
	assert.Contains(t, prompt, "Tone: friendly")
	assert.Contains(t, prompt, "Ad Platform: facebook")
	assert.Contains(t, prompt, "Business Location: Austin, TX")
	assert.Contains(t, prompt, "max 40 characters", "facebook headline budget")
}

func TestBuildPrompt_PlatformHeadlineLimits(t *testing.T) {
	google := BuildPrompt(Request{Product: "p", Audience: "a", USP: "u", Platform: "google"})
	generic := BuildPrompt(Request{Product: "p", Audience: "a", USP: "u"})

	assert.Contains(t, google, "max 30 characters")
	assert.Contains(t, generic, "max 60 characters")
	assert.False(t, strings.Contains(generic, "Ad Platform:"), "generic requests carry no platform line")
}

func TestBuildPrompt_OmitsEmptyHints(t *testing.T) {
	prompt := BuildPrompt(Request{Product: "p", Audience: "a", USP: "u"})

	assert.NotContains(t, prompt, "Business Location")
	assert.NotContains(t, prompt, "Target Demographic")
	assert.NotContains(t, prompt, "Keywords to work in")
}
