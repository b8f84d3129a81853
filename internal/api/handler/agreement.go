package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/agreeing"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

func writeAgreementError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	var agreementErr *agreeing.AgreementError
	if errors.As(err, &agreementErr) {
		apiErrors.WriteError(w, agreementErr.Code, agreementErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

// ListClientAgreements lista os acordos percentuais de um cliente
func ListClientAgreements(service agreeing.AgreementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		agreements, err := service.ListAgreements(clientID)
		if err != nil {
			writeAgreementError(w, err, "Erro ao buscar acordos do cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(agreements); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateClientAgreement registra um acordo percentual para um cliente
func CreateClientAgreement(service agreeing.AgreementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClientAgreement")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.CreatePercentAgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ClientID = clientID

		// Sem vigência informada, o acordo começa no mês corrente
		now := time.Now()
		if request.StartYear == 0 {
			request.StartYear = now.Year()
		}
		if request.StartMonth == 0 {
			request.StartMonth = int(now.Month())
		}

		agreement, err := service.CreateAgreement(&request)
		if err != nil {
			writeAgreementError(w, err, "Erro ao criar acordo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(agreement); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateAgreement altera campos de um acordo percentual
func UpdateAgreement(service agreeing.AgreementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAgreement")

		agreementID := httprouter.ParamsFromContext(r.Context()).ByName("agreement_id")
		if agreementID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do acordo não fornecido", nil)
			return
		}

		var request domain.UpdatePercentAgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = agreementID

		if err := service.UpdateAgreement(&request); err != nil {
			writeAgreementError(w, err, "Erro ao atualizar acordo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteAgreement remove um acordo percentual
func DeleteAgreement(service agreeing.AgreementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAgreement")

		agreementID := httprouter.ParamsFromContext(r.Context()).ByName("agreement_id")
		if agreementID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do acordo não fornecido", nil)
			return
		}

		if err := service.DeleteAgreement(agreementID); err != nil {
			writeAgreementError(w, err, "Erro ao remover acordo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListClientPayouts lista os repasses de um cliente em um ano
func ListClientPayouts(service agreeing.AgreementService) http.HandlerFunc {
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

		payouts, err := service.ListPayouts(clientID, year)
		if err != nil {
			writeAgreementError(w, err, "Erro ao buscar repasses do cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payouts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpsertClientPayout grava o repasse de um mês para um cliente
func UpsertClientPayout(service agreeing.AgreementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertClientPayout")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.UpsertPayoutRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ClientID = clientID

		payout, err := service.UpsertPayout(&request)
		if err != nil {
			writeAgreementError(w, err, "Erro ao gravar repasse")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payout); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetPayoutSummary monta o resumo anual de repasses contra honorários de um cliente
func GetPayoutSummary(service agreeing.AgreementService) http.HandlerFunc {
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

		summary, err := service.BuildPayoutSummary(clientID, year)
		if err != nil {
			writeAgreementError(w, err, "Erro ao montar resumo de repasses")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
