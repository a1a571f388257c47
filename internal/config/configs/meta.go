package configs

import (
	"strings"
	"time"
)

// Meta holds credentials and endpoint settings for the Graph API. The
// client receives this struct at construction time; the application
// never keeps API credentials in package-level state.
type Meta struct {
	// AccessToken authenticates every Graph API call.
	AccessToken string `env:"ACCESS_TOKEN,required"`
	// AdAccountID is the target ad account. The "act_" prefix may be
	// omitted; AccountPath normalises it.
	AdAccountID string `env:"AD_ACCOUNT_ID,required"`
	// BaseURL is the Graph API host.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// Version is the Graph API version segment.
	Version string `env:"VERSION" envDefault:"v21.0"`
	// Timeout bounds each upstream HTTP call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// AccountPath returns the ad account path segment with the act_ prefix
// the Graph API expects.
func (m Meta) AccountPath() string {
	if strings.HasPrefix(m.AdAccountID, "act_") {
		return m.AdAccountID
	}
	return "act_" + m.AdAccountID
}
