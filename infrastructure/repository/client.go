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
	clientsTable = "clients"
)

type ClientRepository interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.UpdateClientRequest) error
	GetClientByID(clientID string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	DeleteClient(clientID string) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do cliente: %w", err)
	}
	client.ID = id

	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}

	if client.PlanType == "" {
		client.PlanType = domain.PlanTypeRegular
	}

	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns("id", "name", "contact_name", "contact_email", "contact_phone", "plan_type", "status", "notes").
		Values(client.ID, client.Name, client.ContactName, client.ContactEmail, client.ContactPhone, client.PlanType, client.Status, client.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.UpdateClientRequest) error {
	queryBuilder := squirrel.
		Update(clientsTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": client.ID})

	if client.Name != nil {
		queryBuilder = queryBuilder.Set("name", *client.Name)
	}

	if client.ContactName != nil {
		queryBuilder = queryBuilder.Set("contact_name", *client.ContactName)
	}

	if client.ContactEmail != nil {
		queryBuilder = queryBuilder.Set("contact_email", *client.ContactEmail)
	}

	if client.ContactPhone != nil {
		queryBuilder = queryBuilder.Set("contact_phone", *client.ContactPhone)
	}

	if client.PlanType != nil {
		queryBuilder = queryBuilder.Set("plan_type", *client.PlanType)
	}

	if client.Status != nil {
		queryBuilder = queryBuilder.Set("status", *client.Status)
	}

	if client.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *client.Notes)
	}

	updateSQL, updateArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) GetClientByID(clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("id", "name", "contact_name", "contact_email", "contact_phone", "plan_type", "status", "notes", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	client := &domain.Client{}
	err = row.Scan(
		&client.ID,
		&client.Name,
		&client.ContactName,
		&client.ContactEmail,
		&client.ContactPhone,
		&client.PlanType,
		&client.Status,
		&client.Notes,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("id", "name", "contact_name", "contact_email", "contact_phone", "plan_type", "status", "notes", "created_at", "updated_at").
		From(clientsTable).
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		err = rows.Scan(
			&client.ID,
			&client.Name,
			&client.ContactName,
			&client.ContactEmail,
			&client.ContactPhone,
			&client.PlanType,
			&client.Status,
			&client.Notes,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) DeleteClient(clientID string) error {
	query, args, err := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	return nil
}
