package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

const (
	projectsTable                = "projects"
	projectRequiredServicesTable = "project_required_services prs"
)

type ProjectRepository interface {
	ListProjects() ([]*domain.Project, error)
	GetProjectByID(projectID string) (*domain.Project, error)
	CreateProject(project *domain.Project) (*domain.Project, error)
	GetRequiredServices(projectID string) ([]*domain.ProjectRequiredService, error)
	CreateRequiredService(item *domain.ProjectRequiredService) (*domain.ProjectRequiredService, error)
	DeleteRequiredService(itemID string) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) ListProjects() ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "name", "status", "notes", "created_at", "updated_at").
		From(projectsTable).
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

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project := &domain.Project{}
		err = rows.Scan(&project.ID, &project.ClientID, &project.Name, &project.Status, &project.Notes, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) GetProjectByID(projectID string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select("id", "client_id", "name", "status", "notes", "created_at", "updated_at").
		From(projectsTable).
		Where(squirrel.Eq{"id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	project := &domain.Project{}
	err = row.Scan(&project.ID, &project.ClientID, &project.Name, &project.Status, &project.Notes, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}

	return project, nil
}

func (r *projectRepository) CreateProject(project *domain.Project) (*domain.Project, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do projeto: %w", err)
	}
	project.ID = id

	if project.Status == "" {
		project.Status = domain.ProjectStatusPlanned
	}

	query, args, err := squirrel.
		Insert(projectsTable).
		Columns("id", "client_id", "name", "status", "notes").
		Values(project.ID, project.ClientID, project.Name, project.Status, project.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir projeto: %w", err)
	}

	return project, nil
}

// GetRequiredServices retorna as linhas de template do projeto já com o
// serviço do catálogo associado (join feito na leitura, como o gerador espera)
func (r *projectRepository) GetRequiredServices(projectID string) ([]*domain.ProjectRequiredService, error) {
	query, args, err := squirrel.
		Select(
			"prs.id", "prs.project_id", "prs.service_id", "prs.default_quantity", "prs.quantity_unit_note", "prs.when_applied", "prs.created_at",
			"sc.id", "sc.name", "sc.description", "sc.regular_unit_price", "sc.plan_unit_price", "sc.default_monthly_fee", "sc.active", "sc.created_at", "sc.updated_at",
		).
		From(projectRequiredServicesTable).
		LeftJoin("service_catalog sc ON sc.id = prs.service_id").
		Where(squirrel.Eq{"prs.project_id": projectID}).
		OrderBy("prs.created_at ASC").
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

	items := make([]*domain.ProjectRequiredService, 0)
	for rows.Next() {
		item := &domain.ProjectRequiredService{}

		var (
			serviceID         sql.NullString
			serviceName       sql.NullString
			description       sql.NullString
			regularUnitPrice  sql.NullFloat64
			planUnitPrice     sql.NullFloat64
			defaultMonthlyFee sql.NullFloat64
			active            sql.NullBool
			serviceCreatedAt  sql.NullTime
			serviceUpdatedAt  sql.NullTime
		)

		err = rows.Scan(
			&item.ID,
			&item.ProjectID,
			&item.ServiceID,
			&item.DefaultQuantity,
			&item.QuantityUnitNote,
			&item.WhenApplied,
			&item.CreatedAt,
			&serviceID,
			&serviceName,
			&description,
			&regularUnitPrice,
			&planUnitPrice,
			&defaultMonthlyFee,
			&active,
			&serviceCreatedAt,
			&serviceUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço requerido: %w", err)
		}

		// Serviço pode ter sido removido do catálogo; o gerador ignora a linha
		if serviceID.Valid {
			service := &domain.ServiceCatalogItem{
				ID:     serviceID.String,
				Name:   serviceName.String,
				Active: active.Bool,
			}

			if description.Valid {
				service.Description = &description.String
			}
			if regularUnitPrice.Valid {
				service.RegularUnitPrice = &regularUnitPrice.Float64
			}
			if planUnitPrice.Valid {
				service.PlanUnitPrice = &planUnitPrice.Float64
			}
			if defaultMonthlyFee.Valid {
				service.DefaultMonthlyFee = &defaultMonthlyFee.Float64
			}
			if serviceCreatedAt.Valid {
				service.CreatedAt = serviceCreatedAt.Time
			}
			if serviceUpdatedAt.Valid {
				service.UpdatedAt = serviceUpdatedAt.Time
			}

			item.Service = service
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *projectRepository) CreateRequiredService(item *domain.ProjectRequiredService) (*domain.ProjectRequiredService, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do serviço requerido: %w", err)
	}
	item.ID = id

	if item.DefaultQuantity == 0 {
		item.DefaultQuantity = 1
	}

	query, args, err := squirrel.
		Insert("project_required_services").
		Columns("id", "project_id", "service_id", "default_quantity", "quantity_unit_note", "when_applied").
		Values(item.ID, item.ProjectID, item.ServiceID, item.DefaultQuantity, item.QuantityUnitNote, item.WhenApplied).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir serviço requerido: %w", err)
	}

	return item, nil
}

func (r *projectRepository) DeleteRequiredService(itemID string) error {
	query, args, err := squirrel.
		Delete("project_required_services").
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir serviço requerido: %w", err)
	}

	return nil
}
