package domain

import "time"

type ServiceLineStatus string

const (
	ServiceLineStatusPlanned   ServiceLineStatus = "planned"
	ServiceLineStatusDelivered ServiceLineStatus = "delivered"
	ServiceLineStatusCanceled  ServiceLineStatus = "canceled"
)

// MonthlyServiceLine é uma linha de cobrança mensal de serviço de um cliente.
// Pode nascer de uma inclusão manual ou da geração a partir do template de
// serviços de um projeto. Depois de um override manual de preço
// (pricing_basis = "override") a linha fica desacoplada de mudanças no catálogo
type MonthlyServiceLine struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"client_id"`
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	ServiceID       *string           `json:"service_id,omitempty"`
	ServiceName     *string           `json:"service_name,omitempty"`
	UnitPrice       *float64          `json:"unit_price,omitempty"`
	Quantity        float64           `json:"quantity"`
	MonthlyFee      float64           `json:"monthly_fee"`
	PricingBasis    *string           `json:"pricing_basis,omitempty"`
	LinkedProjectID *string           `json:"linked_project_id,omitempty"`
	Status          ServiceLineStatus `json:"status"`
	DeliveryNotes   *string           `json:"delivery_notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// FeeTotal retorna o valor cobrado pela linha: unit_price * quantity. Linhas
// legadas sem preço unitário usam o monthly_fee como preço, ainda multiplicado
// pela quantidade
func (l *MonthlyServiceLine) FeeTotal() float64 {
	price := l.MonthlyFee
	if l.UnitPrice != nil {
		price = *l.UnitPrice
	}

	quantity := l.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return price * quantity
}

type CreateMonthlyServiceLineRequest struct {
	ClientID      string   `json:"client_id"`
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	ServiceID     *string  `json:"service_id,omitempty"`
	ServiceName   *string  `json:"service_name,omitempty"`
	MonthlyFee    float64  `json:"monthly_fee"`
	Status        *string  `json:"status,omitempty"`
	DeliveryNotes *string  `json:"delivery_notes,omitempty"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
}

type UpdateMonthlyServiceLineRequest struct {
	ID            string   `json:"id"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	MonthlyFee    *float64 `json:"monthly_fee,omitempty"`
	Status        *string  `json:"status,omitempty"`
	DeliveryNotes *string  `json:"delivery_notes,omitempty"`
}
