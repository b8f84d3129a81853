package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/clienting"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

// writeClientError traduz erros do usecase de clientes para a resposta HTTP
func writeClientError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	var clientErr *clienting.ClientError
	if errors.As(err, &clientErr) {
		apiErrors.WriteError(w, clientErr.Code, clientErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

// ListClients lista todos os clientes da agência
func ListClients(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients()
		if err != nil {
			writeClientError(w, err, "Erro ao buscar clientes")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateClient cadastra um novo cliente
func CreateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var request domain.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.CreateClient(&request)
		if err != nil {
			writeClientError(w, err, "Erro ao criar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetClient retorna um cliente por ID
func GetClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		client, err := service.GetClient(clientID)
		if err != nil {
			writeClientError(w, err, "Erro ao buscar cliente")
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateClient atualiza os dados cadastrais de um cliente
func UpdateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClient")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = clientID

		if err := service.UpdateClient(&request); err != nil {
			writeClientError(w, err, "Erro ao atualizar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ArchiveClient arquiva um cliente sem apagar o histórico financeiro
func ArchiveClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ArchiveClient")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		if err := service.ArchiveClient(clientID); err != nil {
			writeClientError(w, err, "Erro ao arquivar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message":   "Cliente arquivado com sucesso",
			"client_id": clientID,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetClientIntegration retorna as credenciais de integração de um cliente
func GetClientIntegration(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		integration, err := service.GetIntegration(clientID)
		if err != nil {
			writeClientError(w, err, "Erro ao buscar integração")
			return
		}

		if integration == nil {
			apiErrors.WriteError(w, apiErrors.ErrIntegrationMissing, "Integração não configurada para este cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(integration); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpsertClientIntegration grava as credenciais de integração e testa as
// conexões com as plataformas externas
func UpsertClientIntegration(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertClientIntegration")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var integration domain.ClientIntegration
		if err := json.NewDecoder(r.Body).Decode(&integration); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		integration.ClientID = clientID

		status, err := service.UpsertIntegration(&integration)
		if err != nil {
			writeClientError(w, err, "Erro ao salvar integração")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteClient remove definitivamente um cliente e todo o seu histórico
func DeleteClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteClient")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		if err := service.DeleteClient(clientID); err != nil {
			writeClientError(w, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetIntegrationSettings retorna as configurações globais de integração
func GetIntegrationSettings(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetIntegrationSettings()
		if err != nil {
			writeClientError(w, err, "Erro ao buscar configurações de integração")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateIntegrationSettings grava as configurações globais de integração
func UpdateIntegrationSettings(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateIntegrationSettings")

		var settings map[string]string
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateIntegrationSettings(settings); err != nil {
			writeClientError(w, err, "Erro ao salvar configurações de integração")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message": "Configurações de integração salvas com sucesso",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
