package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/commissioning"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

func writeCommissionError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	var commissionErr *commissioning.CommissionError
	if errors.As(err, &commissionErr) {
		apiErrors.WriteError(w, commissionErr.Code, commissionErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

// ListCommissionPlans lista os planos de comissão de um cliente, com faixas
func ListCommissionPlans(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		plans, err := service.ListPlans(clientID)
		if err != nil {
			writeCommissionError(w, err, "Erro ao buscar planos de comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plans); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateCommissionPlan cadastra um plano de comissão para um cliente
func CreateCommissionPlan(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCommissionPlan")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.CreateCommissionPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ClientID = clientID

		plan, err := service.CreatePlan(&request)
		if err != nil {
			writeCommissionError(w, err, "Erro ao criar plano de comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateCommissionPlan atualiza um plano de comissão existente
func UpdateCommissionPlan(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCommissionPlan")

		planID := httprouter.ParamsFromContext(r.Context()).ByName("plan_id")
		if planID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do plano não fornecido", nil)
			return
		}

		var request domain.UpdateCommissionPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = planID

		if err := service.UpdatePlan(&request); err != nil {
			writeCommissionError(w, err, "Erro ao atualizar plano de comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// AddCommissionTier adiciona uma faixa a um plano de comissão
func AddCommissionTier(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddCommissionTier")

		planID := httprouter.ParamsFromContext(r.Context()).ByName("plan_id")
		if planID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do plano não fornecido", nil)
			return
		}

		var tier domain.CommissionTier
		if err := json.NewDecoder(r.Body).Decode(&tier); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		tier.PlanID = planID

		created, err := service.AddTier(&tier)
		if err != nil {
			writeCommissionError(w, err, "Erro ao adicionar faixa de comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateCommissionTier atualiza uma faixa de comissão
func UpdateCommissionTier(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCommissionTier")

		tierID := httprouter.ParamsFromContext(r.Context()).ByName("tier_id")
		if tierID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da faixa não fornecido", nil)
			return
		}

		var tier domain.CommissionTier
		if err := json.NewDecoder(r.Body).Decode(&tier); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		tier.ID = tierID

		if err := service.UpdateTier(&tier); err != nil {
			writeCommissionError(w, err, "Erro ao atualizar faixa de comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteCommissionTier remove uma faixa de comissão
func DeleteCommissionTier(service commissioning.CommissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCommissionTier")

		tierID := httprouter.ParamsFromContext(r.Context()).ByName("tier_id")
		if tierID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da faixa não fornecido", nil)
			return
		}

		if err := service.DeleteTier(tierID); err != nil {
			writeCommissionError(w, err, "Erro ao remover faixa de comissão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMonthlyCommission calcula a comissão de um cliente para um mês.
// Sem plano ativo ou sem snapshot de vendas a resposta é 204: comissão
// ausente não é comissão zero
func GetMonthlyCommission(service commissioning.CommissionService) http.HandlerFunc {
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

		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		result, err := service.CommissionForMonth(clientID, year, month)
		if err != nil {
			writeCommissionError(w, err, "Erro ao calcular comissão")
			return
		}

		if result == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
