package domain

import "time"

type AgreementStatus string

const (
	AgreementStatusActive AgreementStatus = "active"
	AgreementStatusPaused AgreementStatus = "paused"
	AgreementStatusEnded  AgreementStatus = "ended"
)

// PercentAgreement é um acordo de comissão percentual sobre uma origem de
// receita do cliente, com vigência a partir de (start_year, start_month) e
// término opcional. Convive com os planos de comissão por faixas: o acordo
// registra o combinado comercial, o plano calcula a comissão da conciliação
type PercentAgreement struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	PercentRate   float64         `json:"percent_rate"`
	RevenueSource string          `json:"revenue_source"`
	StartYear     int             `json:"start_year"`
	StartMonth    int             `json:"start_month"`
	EndYear       *int            `json:"end_year,omitempty"`
	EndMonth      *int            `json:"end_month,omitempty"`
	Status        AgreementStatus `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CreatePercentAgreementRequest struct {
	ClientID      string  `json:"client_id"`
	PercentRate   float64 `json:"percent_rate"`
	RevenueSource string  `json:"revenue_source"`
	StartYear     int     `json:"start_year"`
	StartMonth    int     `json:"start_month"`
	EndYear       *int    `json:"end_year,omitempty"`
	EndMonth      *int    `json:"end_month,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdatePercentAgreementRequest struct {
	ID            string   `json:"id"`
	PercentRate   *float64 `json:"percent_rate,omitempty"`
	RevenueSource *string  `json:"revenue_source,omitempty"`
	StartYear     *int     `json:"start_year,omitempty"`
	StartMonth    *int     `json:"start_month,omitempty"`
	EndYear       *int     `json:"end_year,omitempty"`
	EndMonth      *int     `json:"end_month,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// Payout é um repasse mensal registrado para um cliente, opcionalmente ligado
// ao acordo percentual que o originou. A chave de upsert é
// (client_id, agreement_id, year, month): regravar o mesmo mês substitui o
// valor em vez de duplicar o repasse
type Payout struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	AgreementID *string   `json:"agreement_id,omitempty"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Amount      float64   `json:"amount"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpsertPayoutRequest struct {
	ClientID    string  `json:"client_id"`
	AgreementID *string `json:"agreement_id,omitempty"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Amount      float64 `json:"amount"`
	Notes       *string `json:"notes,omitempty"`
}

// PayoutSummaryRow é a linha mensal do resumo de repasses: o total repassado
// no mês contra os honorários de serviços do mesmo mês
type PayoutSummaryRow struct {
	Month       int     `json:"month"`
	PayoutTotal float64 `json:"payout_total"`
	ServiceFees float64 `json:"service_fees"`
	Delta       float64 `json:"delta"`
}

type PayoutSummary struct {
	ClientID         string              `json:"client_id"`
	Year             int                 `json:"year"`
	Rows             []*PayoutSummaryRow `json:"rows"`
	TotalPayouts     float64             `json:"total_payouts"`
	TotalServiceFees float64             `json:"total_service_fees"`
	TotalDelta       float64             `json:"total_delta"`
}
