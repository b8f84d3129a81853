package domain

import "time"

// IntegrationSetting é um par chave/valor global de integração
// (ex.: poconverto_base_url, poconverto_api_key)
type IntegrationSetting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	SettingPoconvertoBaseURL = "poconverto_base_url"
	SettingPoconvertoAPIKey  = "poconverto_api_key"
)
