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
	clientIntegrationsTable  = "client_integrations"
	integrationSettingsTable = "integration_settings"
)

type IntegrationRepository interface {
	GetByClientID(clientID string) (*domain.ClientIntegration, error)
	ListWithPoconvertoKey() ([]*domain.ClientIntegration, error)
	ListWithIcountToken() ([]*domain.ClientIntegration, error)
	Upsert(integration *domain.ClientIntegration) error
	GetSettings() (map[string]string, error)
	UpsertSetting(key, value string) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

const integrationColumns = "id, client_id, poconverto_client_key, shop_domain, icount_company_id, icount_api_token, created_at, updated_at"

func (r *integrationRepository) GetByClientID(clientID string) (*domain.ClientIntegration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(clientIntegrationsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	integration := &domain.ClientIntegration{}
	err = row.Scan(
		&integration.ID,
		&integration.ClientID,
		&integration.PoconvertoClientKey,
		&integration.ShopDomain,
		&integration.IcountCompanyID,
		&integration.IcountAPIToken,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integração do cliente: %w", err)
	}

	return integration, nil
}

func (r *integrationRepository) ListWithPoconvertoKey() ([]*domain.ClientIntegration, error) {
	return r.listWhere(squirrel.NotEq{"poconverto_client_key": nil})
}

func (r *integrationRepository) ListWithIcountToken() ([]*domain.ClientIntegration, error) {
	return r.listWhere(squirrel.NotEq{"icount_api_token": nil})
}

func (r *integrationRepository) listWhere(cond squirrel.Sqlizer) ([]*domain.ClientIntegration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(clientIntegrationsTable).
		Where(cond).
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

	integrations := make([]*domain.ClientIntegration, 0)
	for rows.Next() {
		integration := &domain.ClientIntegration{}
		err = rows.Scan(
			&integration.ID,
			&integration.ClientID,
			&integration.PoconvertoClientKey,
			&integration.ShopDomain,
			&integration.IcountCompanyID,
			&integration.IcountAPIToken,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear integração do cliente: %w", err)
		}
		integrations = append(integrations, integration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return integrations, nil
}

func (r *integrationRepository) Upsert(integration *domain.ClientIntegration) error {
	if integration.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da integração: %w", err)
		}
		integration.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert(clientIntegrationsTable).
		Columns("id", "client_id", "poconverto_client_key", "shop_domain", "icount_company_id", "icount_api_token").
		Values(
			integration.ID,
			integration.ClientID,
			integration.PoconvertoClientKey,
			integration.ShopDomain,
			integration.IcountCompanyID,
			integration.IcountAPIToken,
		).
		Suffix(`
			ON CONFLICT (client_id) DO UPDATE SET
				poconverto_client_key = EXCLUDED.poconverto_client_key,
				shop_domain = EXCLUDED.shop_domain,
				icount_company_id = EXCLUDED.icount_company_id,
				icount_api_token = EXCLUDED.icount_api_token,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar integração do cliente: %w", err)
	}

	return nil
}

func (r *integrationRepository) GetSettings() (map[string]string, error) {
	query, args, err := squirrel.
		Select("key", "value").
		From(integrationSettingsTable).
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

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
		}
		settings[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settings, nil
}

func (r *integrationRepository) UpsertSetting(key, value string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da configuração: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(integrationSettingsTable).
		Columns("id", "key", "value").
		Values(id, key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar configuração de integração: %w", err)
	}

	return nil
}
