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
	payoutsTable = "payouts"
)

type PayoutRepository interface {
	GetByClientAndYear(clientID string, year int) ([]*domain.Payout, error)
	Upsert(payout *domain.Payout) error
}

type payoutRepository struct {
	conn *postgres.Connection
}

func NewPayoutRepository(conn *postgres.Connection) PayoutRepository {
	return &payoutRepository{
		conn: conn,
	}
}

func (r *payoutRepository) GetByClientAndYear(clientID string, year int) ([]*domain.Payout, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "agreement_id", "year", "month", "amount", "notes", "created_at").
		From(payoutsTable).
		Where(squirrel.Eq{"client_id": clientID, "year": year}).
		OrderBy("month ASC").
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

	payouts := make([]*domain.Payout, 0)
	for rows.Next() {
		payout := &domain.Payout{}
		err = rows.Scan(
			&payout.ID,
			&payout.ClientID,
			&payout.AgreementID,
			&payout.Year,
			&payout.Month,
			&payout.Amount,
			&payout.Notes,
			&payout.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear repasse: %w", err)
		}
		payouts = append(payouts, payout)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payouts, nil
}

// Upsert insere ou substitui o repasse pela chave
// (client_id, agreement_id, year, month). O índice único trata agreement_id
// nulo como igual a nulo, então o repasse avulso do mês também não duplica
func (r *payoutRepository) Upsert(payout *domain.Payout) error {
	if payout.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do repasse: %w", err)
		}
		payout.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert(payoutsTable).
		Columns("id", "client_id", "agreement_id", "year", "month", "amount", "notes").
		Values(
			payout.ID,
			payout.ClientID,
			payout.AgreementID,
			payout.Year,
			payout.Month,
			payout.Amount,
			payout.Notes,
		).
		Suffix(`
			ON CONFLICT (client_id, agreement_id, year, month) DO UPDATE SET
				amount = EXCLUDED.amount,
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
