package icountclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	icountdomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/domain"
)

type docSearchRequest struct {
	CompanyID string `json:"cid"`
	Token     string `json:"token"`
	DocType   string `json:"doctype"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
}

type docSearchResponse struct {
	Status       bool                    `json:"status"`
	ErrorMessage string                  `json:"error_description"`
	Results      []icountdomain.Document `json:"results"`
}

// SearchDocuments pesquisa documentos fiscais de um tipo no período informado.
// A API do iCount responde status=false com a descrição do erro no corpo
func (c *IcountClient) SearchDocuments(doctype string, params icountdomain.SearchParams) ([]icountdomain.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Icount.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/doc/search")

	payload := docSearchRequest{
		CompanyID: params.CompanyID,
		Token:     params.APIToken,
		DocType:   doctype,
		FromDate:  params.FromDate,
		ToDate:    params.ToDate,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response docSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if !response.Status {
		return nil, errors.Errorf("iCount retornou erro: %s", response.ErrorMessage)
	}

	return response.Results, nil
}
