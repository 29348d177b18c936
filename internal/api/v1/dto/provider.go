package dto

// ProvidersResponse lists the registered providers and the default.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
	Default   string   `json:"default"`
}
