package usage

import "time"

// Response represents the account's quota standing for the current month
type Response struct {
	Plan         string    `json:"plan"`
	AdsGenerated int       `json:"adsGenerated"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	Unlimited    bool      `json:"unlimited"`
	LastReset    time.Time `json:"lastReset"`
}
