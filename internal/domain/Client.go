package domain

import "time"

// Tipos de plano de precificação de um cliente
const (
	PlanTypeCommission = "commission_plan"
	PlanTypeRegular    = "regular_pricing"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusPaused   ClientStatus = "paused"
	ClientStatusArchived ClientStatus = "archived"
)

type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ContactName  *string      `json:"contact_name,omitempty"`
	ContactEmail *string      `json:"contact_email,omitempty"`
	ContactPhone *string      `json:"contact_phone,omitempty"`
	PlanType     string       `json:"plan_type"`
	Status       ClientStatus `json:"status"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ClientIntegration guarda as credenciais de integração de um cliente com as
// plataformas externas (Poconverto para analytics, iCount para faturamento)
type ClientIntegration struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	PoconvertoClientKey *string   `json:"poconverto_client_key,omitempty"`
	ShopDomain          *string   `json:"shop_domain,omitempty"`
	IcountCompanyID     *string   `json:"icount_company_id,omitempty"`
	IcountAPIToken      *string   `json:"icount_api_token,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// IntegrationStatus é o resultado do teste de conexão após salvar as
// credenciais. Nil significa plataforma não configurada
type IntegrationStatus struct {
	ClientID            string `json:"client_id"`
	PoconvertoConnected *bool  `json:"poconverto_connected,omitempty"`
	IcountConnected     *bool  `json:"icount_connected,omitempty"`
}

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	PlanType     string  `json:"plan_type"`
	Notes        *string `json:"notes,omitempty"`
}

type UpdateClientRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	PlanType     *string `json:"plan_type,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
