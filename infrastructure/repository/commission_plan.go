package repository

import (
	"context"
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
	commissionPlansTable = "commission_plans"
	commissionTiersTable = "commission_tiers"
)

type CommissionPlanRepository interface {
	CreatePlan(plan *domain.CommissionPlan) (*domain.CommissionPlan, error)
	UpdatePlan(plan *domain.UpdateCommissionPlanRequest) error
	GetPlansByClient(clientID string) ([]*domain.CommissionPlan, error)
	GetActivePlanByClient(clientID string) (*domain.CommissionPlan, error)
	CreateTier(tier *domain.CommissionTier) (*domain.CommissionTier, error)
	UpdateTier(tier *domain.CommissionTier) error
	DeleteTier(tierID string) error
}

type commissionPlanRepository struct {
	conn *postgres.Connection
}

func NewCommissionPlanRepository(conn *postgres.Connection) CommissionPlanRepository {
	return &commissionPlanRepository{
		conn: conn,
	}
}

// deactivateClientPlansSQL desativa todos os planos ativos de um cliente
func deactivateClientPlansSQL(clientID string) (string, []interface{}, error) {
	return squirrel.
		Update(commissionPlansTable).
		Set("is_active", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"client_id": clientID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// deactivateSiblingPlansSQL desativa os demais planos ativos do cliente dono
// do plano informado, resolvendo o cliente por subquery
func deactivateSiblingPlansSQL(planID string) (string, []interface{}, error) {
	return squirrel.
		Update(commissionPlansTable).
		Set("is_active", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Expr("client_id = (SELECT client_id FROM commission_plans WHERE id = ?)", planID)).
		Where(squirrel.NotEq{"id": planID}).
		Where(squirrel.Eq{"is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// CreatePlan insere o plano e suas faixas em uma única transação. Quando o
// plano nasce ativo, os demais planos do cliente são desativados na mesma
// transação para manter no máximo um plano ativo por cliente
func (r *commissionPlanRepository) CreatePlan(plan *domain.CommissionPlan) (*domain.CommissionPlan, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do plano: %w", err)
	}
	plan.ID = id

	if plan.Currency == "" {
		plan.Currency = "ILS"
	}

	if plan.Base == "" {
		plan.Base = domain.CommissionBaseNetSales
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if plan.IsActive {
			deactivateSQL, deactivateArgs, err := deactivateClientPlansSQL(plan.ClientID)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(deactivateSQL, deactivateArgs...); err != nil {
				return fmt.Errorf("erro ao desativar planos anteriores: %w", err)
			}
		}

		planSQL, planArgs, err := squirrel.
			Insert(commissionPlansTable).
			Columns("id", "client_id", "name", "minimum_fee", "currency", "base", "is_active").
			Values(plan.ID, plan.ClientID, plan.Name, plan.MinimumFee, plan.Currency, plan.Base, plan.IsActive).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(planSQL, planArgs...).Scan(&plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir plano de comissão: %w", err)
		}

		for _, tier := range plan.Tiers {
			tierID, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id da faixa: %w", err)
			}
			tier.ID = tierID
			tier.PlanID = plan.ID

			tierSQL, tierArgs, err := squirrel.
				Insert(commissionTiersTable).
				Columns("id", "plan_id", "threshold_sales", "rate_percent", "order_index").
				Values(tier.ID, tier.PlanID, tier.ThresholdSales, tier.RatePercent, tier.OrderIndex).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(tierSQL, tierArgs...); err != nil {
				return fmt.Errorf("erro ao inserir faixa de comissão: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// UpdatePlan atualiza os campos informados do plano. A ativação roda em uma
// transação que desativa os demais planos do cliente, mantendo no máximo um
// plano ativo por cliente também neste caminho de escrita
func (r *commissionPlanRepository) UpdatePlan(plan *domain.UpdateCommissionPlanRequest) error {
	queryBuilder := squirrel.
		Update(commissionPlansTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": plan.ID})

	if plan.Name != nil {
		queryBuilder = queryBuilder.Set("name", *plan.Name)
	}

	if plan.MinimumFee != nil {
		queryBuilder = queryBuilder.Set("minimum_fee", *plan.MinimumFee)
	}

	if plan.Base != nil {
		queryBuilder = queryBuilder.Set("base", *plan.Base)
	}

	if plan.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *plan.IsActive)
	}

	updateSQL, updateArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if plan.IsActive == nil || !*plan.IsActive {
		_, err = r.conn.Exec(updateSQL, updateArgs...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar plano de comissão: %w", err)
		}
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deactivateSQL, deactivateArgs, err := deactivateSiblingPlansSQL(plan.ID)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deactivateSQL, deactivateArgs...); err != nil {
			return fmt.Errorf("erro ao desativar planos anteriores: %w", err)
		}

		if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar plano de comissão: %w", err)
		}

		return nil
	})
}

func (r *commissionPlanRepository) GetPlansByClient(clientID string) ([]*domain.CommissionPlan, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "name", "minimum_fee", "currency", "base", "is_active", "created_at", "updated_at").
		From(commissionPlansTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC").
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

	plans := make([]*domain.CommissionPlan, 0)
	for rows.Next() {
		plan := &domain.CommissionPlan{}
		err = rows.Scan(
			&plan.ID,
			&plan.ClientID,
			&plan.Name,
			&plan.MinimumFee,
			&plan.Currency,
			&plan.Base,
			&plan.IsActive,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano de comissão: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for _, plan := range plans {
		tiers, err := r.getTiersByPlan(plan.ID)
		if err != nil {
			return nil, err
		}
		plan.Tiers = tiers
	}

	return plans, nil
}

func (r *commissionPlanRepository) GetActivePlanByClient(clientID string) (*domain.CommissionPlan, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "name", "minimum_fee", "currency", "base", "is_active", "created_at", "updated_at").
		From(commissionPlansTable).
		Where(squirrel.Eq{"client_id": clientID, "is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	plan := &domain.CommissionPlan{}
	err = row.Scan(
		&plan.ID,
		&plan.ClientID,
		&plan.Name,
		&plan.MinimumFee,
		&plan.Currency,
		&plan.Base,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano de comissão: %w", err)
	}

	tiers, err := r.getTiersByPlan(plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Tiers = tiers

	return plan, nil
}

func (r *commissionPlanRepository) getTiersByPlan(planID string) ([]*domain.CommissionTier, error) {
	query, args, err := squirrel.
		Select("id", "plan_id", "threshold_sales", "rate_percent", "order_index").
		From(commissionTiersTable).
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("order_index ASC").
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

	tiers := make([]*domain.CommissionTier, 0)
	for rows.Next() {
		tier := &domain.CommissionTier{}
		err = rows.Scan(&tier.ID, &tier.PlanID, &tier.ThresholdSales, &tier.RatePercent, &tier.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de comissão: %w", err)
		}
		tiers = append(tiers, tier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tiers, nil
}

func (r *commissionPlanRepository) CreateTier(tier *domain.CommissionTier) (*domain.CommissionTier, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da faixa: %w", err)
	}
	tier.ID = id

	query, args, err := squirrel.
		Insert(commissionTiersTable).
		Columns("id", "plan_id", "threshold_sales", "rate_percent", "order_index").
		Values(tier.ID, tier.PlanID, tier.ThresholdSales, tier.RatePercent, tier.OrderIndex).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir faixa de comissão: %w", err)
	}

	return tier, nil
}

func (r *commissionPlanRepository) UpdateTier(tier *domain.CommissionTier) error {
	query, args, err := squirrel.
		Update(commissionTiersTable).
		Set("threshold_sales", tier.ThresholdSales).
		Set("rate_percent", tier.RatePercent).
		Set("order_index", tier.OrderIndex).
		Where(squirrel.Eq{"id": tier.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar faixa de comissão: %w", err)
	}

	return nil
}

func (r *commissionPlanRepository) DeleteTier(tierID string) error {
	query, args, err := squirrel.
		Delete(commissionTiersTable).
		Where(squirrel.Eq{"id": tierID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir faixa de comissão: %w", err)
	}

	return nil
}
