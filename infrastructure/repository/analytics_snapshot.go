package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

const (
	analyticsSnapshotsTable = "monthly_analytics_snapshots"
)

type AnalyticsSnapshotRepository interface {
	GetByClientAndYear(clientID string, year int) ([]*domain.MonthlyAnalyticsSnapshot, error)
	GetByClientAndYears(clientID string, years []int) ([]*domain.MonthlyAnalyticsSnapshot, error)
	SaveOrUpdate(snapshot *domain.MonthlyAnalyticsSnapshot) error
}

type analyticsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsSnapshotRepository(conn *postgres.Connection) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

const snapshotColumns = "id, client_id, year, month, gross_sales, discounts, refunds, net_sales, orders, sessions, ad_spend_meta, ad_spend_google, ad_spend_tiktok, ad_spend_total, last_synced_at, created_at, updated_at"

func (r *analyticsSnapshotRepository) GetByClientAndYear(clientID string, year int) ([]*domain.MonthlyAnalyticsSnapshot, error) {
	return r.GetByClientAndYears(clientID, []int{year})
}

func (r *analyticsSnapshotRepository) GetByClientAndYears(clientID string, years []int) ([]*domain.MonthlyAnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(analyticsSnapshotsTable).
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

	snapshots := make([]*domain.MonthlyAnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.MonthlyAnalyticsSnapshot{}
		err = rows.Scan(
			&snapshot.ID,
			&snapshot.ClientID,
			&snapshot.Year,
			&snapshot.Month,
			&snapshot.GrossSales,
			&snapshot.Discounts,
			&snapshot.Refunds,
			&snapshot.NetSales,
			&snapshot.Orders,
			&snapshot.Sessions,
			&snapshot.AdSpendMeta,
			&snapshot.AdSpendGoogle,
			&snapshot.AdSpendTiktok,
			&snapshot.AdSpendTotal,
			&snapshot.LastSyncedAt,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// SaveOrUpdate insere ou atualiza o snapshot pela chave (client_id, year, month).
// É a chave de idempotência do job de sincronização de analytics
func (r *analyticsSnapshotRepository) SaveOrUpdate(snapshot *domain.MonthlyAnalyticsSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	now := time.Now()
	snapshot.LastSyncedAt = &now

	query := squirrel.StatementBuilder.
		Insert(analyticsSnapshotsTable).
		Columns("id", "client_id", "year", "month", "gross_sales", "discounts", "refunds", "net_sales",
			"orders", "sessions", "ad_spend_meta", "ad_spend_google", "ad_spend_tiktok", "ad_spend_total", "last_synced_at").
		Values(
			snapshot.ID,
			snapshot.ClientID,
			snapshot.Year,
			snapshot.Month,
			snapshot.GrossSales,
			snapshot.Discounts,
			snapshot.Refunds,
			snapshot.NetSales,
			snapshot.Orders,
			snapshot.Sessions,
			snapshot.AdSpendMeta,
			snapshot.AdSpendGoogle,
			snapshot.AdSpendTiktok,
			snapshot.AdSpendTotal,
			snapshot.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (client_id, year, month) DO UPDATE SET
				gross_sales = EXCLUDED.gross_sales,
				discounts = EXCLUDED.discounts,
				refunds = EXCLUDED.refunds,
				net_sales = EXCLUDED.net_sales,
				orders = EXCLUDED.orders,
				sessions = EXCLUDED.sessions,
				ad_spend_meta = EXCLUDED.ad_spend_meta,
				ad_spend_google = EXCLUDED.ad_spend_google,
				ad_spend_tiktok = EXCLUDED.ad_spend_tiktok,
				ad_spend_total = EXCLUDED.ad_spend_total,
				last_synced_at = EXCLUDED.last_synced_at,
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
