package models

// Media provider names accepted by the media proxy.
const (
	ProviderOpenverse = "openverse"
	ProviderYouTube   = "youtube"
	ProviderPexels    = "pexels"
	ProviderFreesound = "freesound"
)

// MediaQuery holds the parameters of one proxied search.
type MediaQuery struct {
	// Query is the free-text search term. Required.
	Query string

	// MediaType selects the Openverse collection ("image" or "audio").
	// Other providers ignore it.
	MediaType string

	// Page is 1-based. Providers with 0-based paging convert it.
	Page int
}

// MediaResponse is an upstream answer relayed verbatim to the client.
type MediaResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}
