package generate

import "codeberg.org/adforge/server/internal/copywriter"

// Request represents the request body for ad copy generation
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

// Response represents a successfully generated ad copy
type Response struct {
	Headline          string                `json:"headline"`
	Body              string                `json:"body"`
	CallToAction      string                `json:"callToAction"`
	Targeting         *copywriter.Targeting `json:"targeting,omitempty"`
	RecommendedBudget string                `json:"recommendedBudget,omitempty"`
	AdsRemaining      int                   `json:"adsRemaining"`
}

// converts the wire request to the internal representation
func (r Request) toCopywriterRequest() copywriter.Request {
	return copywriter.Request{
		Product:     r.Product,
		Audience:    r.Audience,
		USP:         r.USP,
		Tone:        r.Tone,
		Platform:    r.Platform,
		Location:    r.Location,
		Demographic: r.Demographic,
		Keywords:    r.Keywords,
	}
}
