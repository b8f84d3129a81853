package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

func writeBillingError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	var billingErr *billing.BillingError
	if errors.As(err, &billingErr) {
		apiErrors.WriteError(w, billingErr.Code, billingErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

// ListServices lista o catálogo de serviços da agência
func ListServices(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListServices()
		if err != nil {
			writeBillingError(w, err, "Erro ao buscar catálogo de serviços")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateService cadastra um serviço no catálogo
func CreateService(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateService")

		var request domain.UpsertServiceCatalogItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := service.CreateService(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao criar serviço")
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

// UpdateService atualiza um serviço do catálogo. Mudanças de preço não
// retroagem sobre linhas mensais já lançadas
func UpdateService(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateService")

		serviceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if serviceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do serviço não fornecido", nil)
			return
		}

		var item domain.ServiceCatalogItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item.ID = serviceID

		if err := service.UpdateService(&item); err != nil {
			writeBillingError(w, err, "Erro ao atualizar serviço")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
