package dto

type PreferenceReq struct {
	AlertType string `json:"alertType" binding:"required,max=120,alertid"`
	Backend   string `json:"backend" binding:"required,max=120,alertid"`
	Enabled   *bool  `json:"enabled" binding:"required"`
}

type PreferenceUriParams struct {
	AlertType string `uri:"alertType" binding:"required,max=120,alertid"`
	Backend   string `uri:"backend" binding:"required,max=120,alertid"`
}

type PreferenceResp struct {
	AlertType string `json:"alertType"`
	Backend   string `json:"backend"`
	Enabled   bool   `json:"enabled"`
}

// UserPreferencesResp lists one entry per (alert type, backend) pair of
// the catalog, in catalog order.
type UserPreferencesResp struct {
	Authenticated bool             `json:"authenticated"`
	Preferences   []PreferenceResp `json:"preferences"`
}
