package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

const (
	monthlyServiceLinesTable = "client_monthly_services"
)

type MonthlyServiceLineRepository interface {
	GetByClientAndYear(clientID string, year int) ([]*domain.MonthlyServiceLine, error)
	GetByClientYearMonth(clientID string, year, month int) ([]*domain.MonthlyServiceLine, error)
	GetByID(lineID string) (*domain.MonthlyServiceLine, error)
	ExistsForKey(clientID string, year, month int, serviceID, projectID string) (bool, error)
	Create(line *domain.MonthlyServiceLine) (*domain.MonthlyServiceLine, error)
	Update(line *domain.MonthlyServiceLine) error
	Delete(lineID string) error
}

type monthlyServiceLineRepository struct {
	conn *postgres.Connection
}

func NewMonthlyServiceLineRepository(conn *postgres.Connection) MonthlyServiceLineRepository {
	return &monthlyServiceLineRepository{
		conn: conn,
	}
}

const serviceLineColumns = "id, client_id, year, month, service_id, service_name, unit_price, quantity, monthly_fee, pricing_basis, linked_project_id, status, delivery_notes, created_at, updated_at"

func (r *monthlyServiceLineRepository) GetByClientAndYear(clientID string, year int) ([]*domain.MonthlyServiceLine, error) {
	builder := squirrel.
		Select(serviceLineColumns).
		From(monthlyServiceLinesTable).
		Where(squirrel.Eq{"client_id": clientID, "year": year}).
		OrderBy("month ASC")

	return r.queryLines(builder)
}

func (r *monthlyServiceLineRepository) GetByClientYearMonth(clientID string, year, month int) ([]*domain.MonthlyServiceLine, error) {
	builder := squirrel.
		Select(serviceLineColumns).
		From(monthlyServiceLinesTable).
		Where(squirrel.Eq{"client_id": clientID, "year": year, "month": month}).
		OrderBy("created_at ASC")

	return r.queryLines(builder)
}

func (r *monthlyServiceLineRepository) queryLines(builder squirrel.SelectBuilder) ([]*domain.MonthlyServiceLine, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	lines := make([]*domain.MonthlyServiceLine, 0)
	for rows.Next() {
		line, err := scanServiceLine(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de serviço: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lines, nil
}

func scanServiceLine(rows *sql.Rows) (*domain.MonthlyServiceLine, error) {
	line := &domain.MonthlyServiceLine{}
	err := rows.Scan(
		&line.ID,
		&line.ClientID,
		&line.Year,
		&line.Month,
		&line.ServiceID,
		&line.ServiceName,
		&line.UnitPrice,
		&line.Quantity,
		&line.MonthlyFee,
		&line.PricingBasis,
		&line.LinkedProjectID,
		&line.Status,
		&line.DeliveryNotes,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (r *monthlyServiceLineRepository) GetByID(lineID string) (*domain.MonthlyServiceLine, error) {
	query, args, err := squirrel.
		Select(serviceLineColumns).
		From(monthlyServiceLinesTable).
		Where(squirrel.Eq{"id": lineID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	line := &domain.MonthlyServiceLine{}
	err = row.Scan(
		&line.ID,
		&line.ClientID,
		&line.Year,
		&line.Month,
		&line.ServiceID,
		&line.ServiceName,
		&line.UnitPrice,
		&line.Quantity,
		&line.MonthlyFee,
		&line.PricingBasis,
		&line.LinkedProjectID,
		&line.Status,
		&line.DeliveryNotes,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear linha de serviço: %w", err)
	}

	return line, nil
}

// ExistsForKey verifica se já existe uma linha para a chave composta
// (cliente, ano, mês, serviço, projeto). É a checagem de duplicidade do
// gerador de linhas; a verificação-e-inserção não é atômica, o índice único
// da tabela é quem garante a unicidade sob concorrência
func (r *monthlyServiceLineRepository) ExistsForKey(clientID string, year, month int, serviceID, projectID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(monthlyServiceLinesTable).
		Where(squirrel.Eq{
			"client_id":         clientID,
			"year":              year,
			"month":             month,
			"service_id":        serviceID,
			"linked_project_id": projectID,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar duplicidade de linha: %w", err)
	}

	return true, nil
}

func (r *monthlyServiceLineRepository) Create(line *domain.MonthlyServiceLine) (*domain.MonthlyServiceLine, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da linha de serviço: %w", err)
	}
	line.ID = id

	if line.Status == "" {
		line.Status = domain.ServiceLineStatusPlanned
	}

	if line.Quantity == 0 {
		line.Quantity = 1
	}

	query, args, err := squirrel.
		Insert(monthlyServiceLinesTable).
		Columns("id", "client_id", "year", "month", "service_id", "service_name", "unit_price",
			"quantity", "monthly_fee", "pricing_basis", "linked_project_id", "status", "delivery_notes").
		Values(
			line.ID,
			line.ClientID,
			line.Year,
			line.Month,
			line.ServiceID,
			line.ServiceName,
			line.UnitPrice,
			line.Quantity,
			line.MonthlyFee,
			line.PricingBasis,
			line.LinkedProjectID,
			line.Status,
			line.DeliveryNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir linha de serviço: %w", err)
	}

	return line, nil
}

func (r *monthlyServiceLineRepository) Update(line *domain.MonthlyServiceLine) error {
	query, args, err := squirrel.
		Update(monthlyServiceLinesTable).
		Set("unit_price", line.UnitPrice).
		Set("quantity", line.Quantity).
		Set("monthly_fee", line.MonthlyFee).
		Set("pricing_basis", line.PricingBasis).
		Set("status", line.Status).
		Set("delivery_notes", line.DeliveryNotes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": line.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar linha de serviço: %w", err)
	}

	return nil
}

func (r *monthlyServiceLineRepository) Delete(lineID string) error {
	query, args, err := squirrel.
		Delete(monthlyServiceLinesTable).
		Where(squirrel.Eq{"id": lineID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir linha de serviço: %w", err)
	}

	return nil
}
