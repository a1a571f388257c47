package domain

// AdImage is an image stored in the ad account's library, addressed by
// its upstream hash.
type AdImage struct {
	Hash   string `json:"hash"`
	Name   string `json:"name,omitempty"`
	URL    string `json:"url,omitempty"`
	Status string `json:"status,omitempty"`
}
