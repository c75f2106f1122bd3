package copywriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_JSON(t *testing.T) {
	text := `{
		"headline": "Widgets 30% Cheaper",
		"body": "Acme widgets save homeowners money without cutting corners.",
		"call_to_action": "Shop Acme Today",
		"targeting": {"radius": 25, "demographic": "homeowners 30-55", "keywords": ["widgets", "home improvement"]},
		"recommended_budget": "$10-20/day"
	}`

	c, err := ParseResponse(text)

	require.NoError(t, err)
	assert.Equal(t, "Widgets 30% Cheaper", c.Headline)
	assert.Equal(t, "Shop Acme Today", c.CallToAction)
	require.NotNil(t, c.Targeting)
	assert.Equal(t, FlexString("25"), c.Targeting.Radius, "numeric radius should normalize to string")
	assert.Equal(t, StringList{"widgets", "home improvement"}, c.Targeting.Keywords)
	assert.Equal(t, "$10-20/day", c.RecommendedBudget)
}

func TestParseResponse_JSONAliases(t *testing.T) {
	// some prompt formats produce cta/adCopy/camelCase variants
	text := `{"headline": "H", "adCopy": "B", "cta": "C", "recommendedBudget": "$5/day"}`

	c, err := ParseResponse(text)

	require.NoError(t, err)
	assert.Equal(t, "B", c.Body)
	assert.Equal(t, "C", c.CallToAction)
	assert.Equal(t, "$5/day", c.RecommendedBudget)
}

func TestParseResponse_JSONInCodeFence(t *testing.T) {
	text := "```json\n{\"headline\": \"H\", \"body\": \"B\", \"call_to_action\": \"C\"}\n```"

	c, err := ParseResponse(text)

	require.NoError(t, err)
	assert.Equal(t, "H", c.Headline)
}

func TestParseResponse_KeywordsAsString(t *testing.T) {
	text := `{"headline": "H", "body": "B", "cta": "C", "targeting": {"keywords": "widgets, home, diy"}}`

	c, err := ParseResponse(text)

	require.NoError(t, err)
	require.NotNil(t, c.Targeting)
	assert.Equal(t, StringList{"widgets", "home", "diy"}, c.Targeting.Keywords)
}

func TestParseResponse_LabeledSections(t *testing.T) {
	text := `Headline:
Widgets 30% Cheaper

Ad Copy:
Acme widgets save homeowners money.
Built to last.

Call to Action:
Shop Acme Today`

	c, err := ParseResponse(text)

	require.NoError(t, err)
	assert.Equal(t, "Widgets 30% Cheaper", c.Headline)
	assert.Equal(t, "Acme widgets save homeowners money. Built to last.", c.Body)
	assert.Equal(t, "Shop Acme Today", c.CallToAction)
}

func TestParseResponse_LabeledSectionsInline(t *testing.T) {
	text := "Headline: Widgets 30% Cheaper\nAd Copy: Save money today.\nCTA: Shop Now"

	c, err := ParseResponse(text)

	require.NoError(t, err)
	assert.Equal(t, "Widgets 30% Cheaper", c.Headline)
	assert.Equal(t, "Save money today.", c.Body)
	assert.Equal(t, "Shop Now", c.CallToAction)
}

func TestParseResponse_MissingCallToAction(t *testing.T) {
	text := `{"headline": "H", "body": "B"}`

	_, err := ParseResponse(text)

	require.Error(t, err)

	var fErr *FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, []string{"callToAction"}, fErr.Missing)
}

func TestParseResponse_Junk(t *testing.T) {
	_, err := ParseResponse("I'm sorry, I can't help with that.")

	var fErr *FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Len(t, fErr.Missing, 3)
}
