package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/reconciling"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

// GetReconciliationReport monta o relatório anual de conciliação de um
// cliente: 12 meses de vendas, receita offline, comissão, serviços e KPIs
func GetReconciliationReport(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		// Sem ano na query, o relatório é do ano corrente
		year := time.Now().Year()
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		report, err := service.BuildYearReport(clientID, year)
		if err != nil {
			writeReconciliationError(w, err, "Erro ao montar relatório de conciliação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListClientSnapshots lista os snapshots mensais de analytics de um cliente
func ListClientSnapshots(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		year := time.Now().Year()
		if yearParam := r.URL.Query().Get("year"); yearParam != "" {
			parsed, err := strconv.Atoi(yearParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		snapshots, err := service.ListSnapshots(clientID, year)
		if err != nil {
			writeReconciliationError(w, err, "Erro ao buscar snapshots do cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
