package dto

type BackendResp struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

type AlertTypeResp struct {
	Id          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Defaults    map[string]bool `json:"defaults"`
}

type CatalogResp struct {
	AlertTypes []AlertTypeResp `json:"alertTypes"`
	Backends   []BackendResp   `json:"backends"`
}
