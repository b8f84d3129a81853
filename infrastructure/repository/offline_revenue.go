package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

const (
	offlineRevenueTable = "monthly_offline_revenue"
)

type OfflineRevenueRepository interface {
	GetByClientAndYear(clientID string, year int) ([]*domain.OfflineRevenueEntry, error)
	GetByClientAndYears(clientID string, years []int) ([]*domain.OfflineRevenueEntry, error)
	Upsert(entry *domain.OfflineRevenueEntry) error
	Delete(entryID string) error
}

type offlineRevenueRepository struct {
	conn *postgres.Connection
}

func NewOfflineRevenueRepository(conn *postgres.Connection) OfflineRevenueRepository {
	return &offlineRevenueRepository{
		conn: conn,
	}
}

func (r *offlineRevenueRepository) GetByClientAndYear(clientID string, year int) ([]*domain.OfflineRevenueEntry, error) {
	return r.GetByClientAndYears(clientID, []int{year})
}

func (r *offlineRevenueRepository) GetByClientAndYears(clientID string, years []int) ([]*domain.OfflineRevenueEntry, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "year", "month", "source", "amount_gross", "amount_net", "notes", "created_at", "updated_at").
		From(offlineRevenueTable).
		Where(squirrel.Eq{"client_id": clientID, "year": years}).
		OrderBy("year ASC", "month ASC").
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

	entries := make([]*domain.OfflineRevenueEntry, 0)
	for rows.Next() {
		entry := &domain.OfflineRevenueEntry{}
		err = rows.Scan(
			&entry.ID,
			&entry.ClientID,
			&entry.Year,
			&entry.Month,
			&entry.Source,
			&entry.AmountGross,
			&entry.AmountNet,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear receita offline: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// Upsert insere ou atualiza a entrada pela chave (client_id, year, month, source).
// A unicidade é por origem: o total de um mês é a soma das entradas de todas
// as origens
func (r *offlineRevenueRepository) Upsert(entry *domain.OfflineRevenueEntry) error {
	if entry.Source == "" {
		entry.Source = domain.OfflineSourceIcountOther
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da receita offline: %w", err)
		}
		entry.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert(offlineRevenueTable).
		Columns("id", "client_id", "year", "month", "source", "amount_gross", "amount_net", "notes").
		Values(
			entry.ID,
			entry.ClientID,
			entry.Year,
			entry.Month,
			entry.Source,
			entry.AmountGross,
			entry.AmountNet,
			entry.Notes,
		).
		Suffix(`
			ON CONFLICT (client_id, year, month, source) DO UPDATE SET
				amount_gross = EXCLUDED.amount_gross,
				amount_net = EXCLUDED.amount_net,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *offlineRevenueRepository) Delete(entryID string) error {
	query, args, err := squirrel.
		Delete(offlineRevenueTable).
		Where(squirrel.Eq{"id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir receita offline: %w", err)
	}

	return nil
}
