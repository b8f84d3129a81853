package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

// ListProjects lista os projetos da agência
func ListProjects(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := service.ListProjects()
		if err != nil {
			writeBillingError(w, err, "Erro ao buscar projetos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projects); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateProject cadastra um projeto para um cliente
func CreateProject(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProject")

		var request domain.CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		project, err := service.CreateProject(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao criar projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(project); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetProjectTemplate retorna o template de serviços exigidos por um projeto
func GetProjectTemplate(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		template, err := service.GetProjectTemplate(projectID)
		if err != nil {
			writeBillingError(w, err, "Erro ao buscar template do projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(template); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// AddProjectRequiredService adiciona um serviço ao template do projeto
func AddProjectRequiredService(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddProjectRequiredService")

		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		var request domain.CreateProjectRequiredServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ProjectID = projectID

		item, err := service.AddRequiredService(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao adicionar serviço ao template")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// RemoveProjectRequiredService remove um serviço do template do projeto
func RemoveProjectRequiredService(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveProjectRequiredService")

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do item não fornecido", nil)
			return
		}

		if err := service.RemoveRequiredService(itemID); err != nil {
			writeBillingError(w, err, "Erro ao remover serviço do template")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GenerateProjectServiceLines gera as linhas mensais de um projeto a partir do
// template. A operação é idempotente: linhas já existentes para a chave
// composta são puladas e contadas em skipped
func GenerateProjectServiceLines(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateProjectServiceLines")

		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		var request domain.GenerateServiceLinesRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ProjectID = projectID

		response, err := service.GenerateProjectServiceLines(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao gerar linhas do projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
