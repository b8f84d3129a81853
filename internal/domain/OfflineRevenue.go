package domain

import "time"

// Origens de receita offline reconhecidas. A unicidade de uma entrada é por
// (cliente, ano, mês, origem): o total do mês é sempre a soma das entradas
const (
	OfflineSourceIcountOther  = "icount_other"
	OfflineSourcePhone        = "phone"
	OfflineSourceFair         = "fair"
	OfflineSourceOfflineStore = "offline_store"
	OfflineSourceOther        = "other"
)

type OfflineRevenueEntry struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Source      string    `json:"source"`
	AmountGross float64   `json:"amount_gross"`
	AmountNet   *float64  `json:"amount_net,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertOfflineRevenueRequest struct {
	ClientID    string   `json:"client_id"`
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	Source      string   `json:"source,omitempty"`
	AmountGross float64  `json:"amount_gross"`
	AmountNet   *float64 `json:"amount_net,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}
