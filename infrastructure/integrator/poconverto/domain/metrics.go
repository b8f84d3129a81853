package domain

// MonthlyMetrics é a linha mensal retornada pela API do Poconverto para uma
// loja. Os valores monetários já chegam na moeda da loja
type MonthlyMetrics struct {
	Month         string  `json:"month"` // formato yyyy-mm
	GrossSales    float64 `json:"gross_sales"`
	Discounts     float64 `json:"discounts"`
	Refunds       float64 `json:"refunds"`
	NetSales      float64 `json:"net_sales"`
	Orders        int     `json:"orders"`
	Sessions      int     `json:"sessions"`
	AdSpendMeta   float64 `json:"ad_spend_meta"`
	AdSpendGoogle float64 `json:"ad_spend_google"`
	AdSpendTiktok float64 `json:"ad_spend_tiktok"`
	AdSpendTotal  float64 `json:"ad_spend_total"`
}

type GetMetricsParams struct {
	ClientKey  string
	ShopDomain string
	FromMonth  string // yyyy-mm
	ToMonth    string // yyyy-mm
}

type CheckConnectionParams struct {
	ClientKey  string
	ShopDomain string
}
