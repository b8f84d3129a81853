package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	Notes     *string       `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ProjectRequiredService é uma linha de template de projeto: um serviço do
// catálogo que o projeto exige todo mês. Não é cobrável por si só; apenas o
// gerador de linhas mensais a consome
type ProjectRequiredService struct {
	ID               string              `json:"id"`
	ProjectID        string              `json:"project_id"`
	ServiceID        string              `json:"service_id"`
	DefaultQuantity  float64             `json:"default_quantity"`
	QuantityUnitNote *string             `json:"quantity_unit_note,omitempty"`
	WhenApplied      *string             `json:"when_applied,omitempty"`
	Service          *ServiceCatalogItem `json:"service,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

type CreateProjectRequest struct {
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type CreateProjectRequiredServiceRequest struct {
	ProjectID        string   `json:"project_id"`
	ServiceID        string   `json:"service_id"`
	DefaultQuantity  *float64 `json:"default_quantity,omitempty"`
	QuantityUnitNote *string  `json:"quantity_unit_note,omitempty"`
	WhenApplied      *string  `json:"when_applied,omitempty"`
}

// GenerateServiceLinesRequest dispara a geração de linhas mensais a partir do
// template de serviços de um projeto
type GenerateServiceLinesRequest struct {
	ProjectID string `json:"project_id"`
	ClientID  string `json:"client_id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	PlanType  string `json:"plan_type"`
}

// GenerateServiceLinesResponse resume uma rodada de geração: quantas linhas
// foram criadas e quantas já existiam para a chave composta e foram puladas
type GenerateServiceLinesResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
