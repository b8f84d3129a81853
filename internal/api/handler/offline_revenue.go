package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/reconciling"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

func writeReconciliationError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	var reconciliationErr *reconciling.ReconciliationError
	if errors.As(err, &reconciliationErr) {
		apiErrors.WriteError(w, reconciliationErr.Code, reconciliationErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

// ListOfflineRevenue lista as entradas de receita offline de um cliente em um ano
func ListOfflineRevenue(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		entries, err := service.ListOfflineRevenue(clientID, year)
		if err != nil {
			writeReconciliationError(w, err, "Erro ao buscar receita offline")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpsertOfflineRevenue grava uma entrada manual de receita offline de um mês
func UpsertOfflineRevenue(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertOfflineRevenue")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.UpsertOfflineRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ClientID = clientID

		entry, err := service.UpsertOfflineRevenue(&request)
		if err != nil {
			writeReconciliationError(w, err, "Erro ao gravar receita offline")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteOfflineRevenue remove uma entrada de receita offline
func DeleteOfflineRevenue(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteOfflineRevenue")

		entryID := httprouter.ParamsFromContext(r.Context()).ByName("entry_id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não fornecido", nil)
			return
		}

		if err := service.DeleteOfflineRevenue(entryID); err != nil {
			writeReconciliationError(w, err, "Erro ao remover receita offline")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
