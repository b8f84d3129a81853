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
	serviceCatalogTable = "service_catalog"
)

type ServiceCatalogRepository interface {
	ListServices() ([]*domain.ServiceCatalogItem, error)
	GetServiceByID(serviceID string) (*domain.ServiceCatalogItem, error)
	CreateService(item *domain.ServiceCatalogItem) (*domain.ServiceCatalogItem, error)
	UpdateService(item *domain.ServiceCatalogItem) error
}

type serviceCatalogRepository struct {
	conn *postgres.Connection
}

func NewServiceCatalogRepository(conn *postgres.Connection) ServiceCatalogRepository {
	return &serviceCatalogRepository{
		conn: conn,
	}
}

func (r *serviceCatalogRepository) ListServices() ([]*domain.ServiceCatalogItem, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "regular_unit_price", "plan_unit_price", "default_monthly_fee", "active", "created_at", "updated_at").
		From(serviceCatalogTable).
		OrderBy("name ASC").
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

	items := make([]*domain.ServiceCatalogItem, 0)
	for rows.Next() {
		item := &domain.ServiceCatalogItem{}
		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.RegularUnitPrice,
			&item.PlanUnitPrice,
			&item.DefaultMonthlyFee,
			&item.Active,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço do catálogo: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *serviceCatalogRepository) GetServiceByID(serviceID string) (*domain.ServiceCatalogItem, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "regular_unit_price", "plan_unit_price", "default_monthly_fee", "active", "created_at", "updated_at").
		From(serviceCatalogTable).
		Where(squirrel.Eq{"id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	item := &domain.ServiceCatalogItem{}
	err = row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.RegularUnitPrice,
		&item.PlanUnitPrice,
		&item.DefaultMonthlyFee,
		&item.Active,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear serviço do catálogo: %w", err)
	}

	return item, nil
}

func (r *serviceCatalogRepository) CreateService(item *domain.ServiceCatalogItem) (*domain.ServiceCatalogItem, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do serviço: %w", err)
	}
	item.ID = id
	item.Active = true

	query, args, err := squirrel.
		Insert(serviceCatalogTable).
		Columns("id", "name", "description", "regular_unit_price", "plan_unit_price", "default_monthly_fee", "active").
		Values(item.ID, item.Name, item.Description, item.RegularUnitPrice, item.PlanUnitPrice, item.DefaultMonthlyFee, item.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir serviço no catálogo: %w", err)
	}

	return item, nil
}

func (r *serviceCatalogRepository) UpdateService(item *domain.ServiceCatalogItem) error {
	query, args, err := squirrel.
		Update(serviceCatalogTable).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("regular_unit_price", item.RegularUnitPrice).
		Set("plan_unit_price", item.PlanUnitPrice).
		Set("default_monthly_fee", item.DefaultMonthlyFee).
		Set("active", item.Active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar serviço do catálogo: %w", err)
	}

	return nil
}
