package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

const (
	percentAgreementsTable = "percent_agreements"
)

type AgreementRepository interface {
	CreateAgreement(agreement *domain.PercentAgreement) (*domain.PercentAgreement, error)
	UpdateAgreement(agreement *domain.UpdatePercentAgreementRequest) error
	DeleteAgreement(agreementID string) error
	GetAgreementsByClient(clientID string) ([]*domain.PercentAgreement, error)
	GetAgreementByID(agreementID string) (*domain.PercentAgreement, error)
}

type agreementRepository struct {
	conn *postgres.Connection
}

func NewAgreementRepository(conn *postgres.Connection) AgreementRepository {
	return &agreementRepository{
		conn: conn,
	}
}

func (r *agreementRepository) CreateAgreement(agreement *domain.PercentAgreement) (*domain.PercentAgreement, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do acordo: %w", err)
	}
	agreement.ID = id

	query, args, err := squirrel.
		Insert(percentAgreementsTable).
		Columns("id", "client_id", "percent_rate", "revenue_source", "start_year", "start_month", "end_year", "end_month", "status", "notes").
		Values(
			agreement.ID,
			agreement.ClientID,
			agreement.PercentRate,
			agreement.RevenueSource,
			agreement.StartYear,
			agreement.StartMonth,
			agreement.EndYear,
			agreement.EndMonth,
			agreement.Status,
			agreement.Notes,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&agreement.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir acordo percentual: %w", err)
	}

	return agreement, nil
}

func (r *agreementRepository) UpdateAgreement(agreement *domain.UpdatePercentAgreementRequest) error {
	queryBuilder := squirrel.
		Update(percentAgreementsTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": agreement.ID})

	if agreement.PercentRate != nil {
		queryBuilder = queryBuilder.Set("percent_rate", *agreement.PercentRate)
	}

	if agreement.RevenueSource != nil {
		queryBuilder = queryBuilder.Set("revenue_source", *agreement.RevenueSource)
	}

	if agreement.StartYear != nil {
		queryBuilder = queryBuilder.Set("start_year", *agreement.StartYear)
	}

	if agreement.StartMonth != nil {
		queryBuilder = queryBuilder.Set("start_month", *agreement.StartMonth)
	}

	if agreement.EndYear != nil {
		queryBuilder = queryBuilder.Set("end_year", *agreement.EndYear)
	}

	if agreement.EndMonth != nil {
		queryBuilder = queryBuilder.Set("end_month", *agreement.EndMonth)
	}

	if agreement.Status != nil {
		queryBuilder = queryBuilder.Set("status", *agreement.Status)
	}

	if agreement.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *agreement.Notes)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar acordo percentual: %w", err)
	}

	return nil
}

func (r *agreementRepository) DeleteAgreement(agreementID string) error {
	query, args, err := squirrel.
		Delete(percentAgreementsTable).
		Where(squirrel.Eq{"id": agreementID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir acordo percentual: %w", err)
	}

	return nil
}

// GetAgreementsByClient lista os acordos do cliente, mais recentes primeiro
func (r *agreementRepository) GetAgreementsByClient(clientID string) ([]*domain.PercentAgreement, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "percent_rate", "revenue_source", "start_year", "start_month", "end_year", "end_month", "status", "notes", "created_at").
		From(percentAgreementsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("start_year DESC", "start_month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	agreements := make([]*domain.PercentAgreement, 0)
	for rows.Next() {
		agreement := &domain.PercentAgreement{}
		err = rows.Scan(
			&agreement.ID,
			&agreement.ClientID,
			&agreement.PercentRate,
			&agreement.RevenueSource,
			&agreement.StartYear,
			&agreement.StartMonth,
			&agreement.EndYear,
			&agreement.EndMonth,
			&agreement.Status,
			&agreement.Notes,
			&agreement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear acordo percentual: %w", err)
		}
		agreements = append(agreements, agreement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return agreements, nil
}

func (r *agreementRepository) GetAgreementByID(agreementID string) (*domain.PercentAgreement, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "percent_rate", "revenue_source", "start_year", "start_month", "end_year", "end_month", "status", "notes", "created_at").
		From(percentAgreementsTable).
		Where(squirrel.Eq{"id": agreementID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	agreement := &domain.PercentAgreement{}
	err = row.Scan(
		&agreement.ID,
		&agreement.ClientID,
		&agreement.PercentRate,
		&agreement.RevenueSource,
		&agreement.StartYear,
		&agreement.StartMonth,
		&agreement.EndYear,
		&agreement.EndMonth,
		&agreement.Status,
		&agreement.Notes,
		&agreement.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear acordo percentual: %w", err)
	}

	return agreement, nil
}
