package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

// QuickAddServiceLineRequest é o corpo da inclusão rápida: o preço vem do
// catálogo conforme o tipo de plano do cliente
type QuickAddServiceLineRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	ServiceID string `json:"service_id"`
}

// ListServiceLines lista as linhas mensais de serviço de um cliente em um ano
func ListServiceLines(service billing.BillingService) http.HandlerFunc {
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

		var lines []*domain.MonthlyServiceLine
		if monthParam := r.URL.Query().Get("month"); monthParam != "" {
			month, err := strconv.Atoi(monthParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
				return
			}
			lines, err = service.ListLinesForMonth(clientID, year, month)
			if err != nil {
				writeBillingError(w, err, "Erro ao buscar linhas de serviço")
				return
			}
		} else {
			lines, err = service.ListLines(clientID, year)
			if err != nil {
				writeBillingError(w, err, "Erro ao buscar linhas de serviço")
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lines); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateServiceLine lança manualmente uma linha mensal de serviço
func CreateServiceLine(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateServiceLine")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request domain.CreateMonthlyServiceLineRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ClientID = clientID

		line, err := service.CreateLine(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao criar linha de serviço")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(line); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// QuickAddServiceLine lança uma linha a partir do catálogo resolvendo o preço
// pelo tipo de plano do cliente
func QuickAddServiceLine(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QuickAddServiceLine")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var request QuickAddServiceLineRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if request.ServiceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do serviço não fornecido", nil)
			return
		}

		line, err := service.QuickAddLine(clientID, request.Year, request.Month, request.ServiceID)
		if err != nil {
			writeBillingError(w, err, "Erro ao lançar serviço")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(line); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateServiceLine edita uma linha mensal. Edição manual do preço unitário
// marca a linha como override e a desacopla do catálogo
func UpdateServiceLine(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateServiceLine")

		lineID := httprouter.ParamsFromContext(r.Context()).ByName("line_id")
		if lineID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da linha não fornecido", nil)
			return
		}

		var request domain.UpdateMonthlyServiceLineRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = lineID

		line, err := service.UpdateLine(&request)
		if err != nil {
			writeBillingError(w, err, "Erro ao atualizar linha de serviço")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(line); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteServiceLine remove uma linha mensal de serviço
func DeleteServiceLine(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteServiceLine")

		lineID := httprouter.ParamsFromContext(r.Context()).ByName("line_id")
		if lineID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da linha não fornecido", nil)
			return
		}

		if err := service.DeleteLine(lineID); err != nil {
			writeBillingError(w, err, "Erro ao remover linha de serviço")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
