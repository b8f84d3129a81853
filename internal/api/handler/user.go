package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/authenticating"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
	"github.com/yossefJiy/agency-ops-api/pkg/middleware"
)

// userIDFromPath extrai e valida o parâmetro :id das rotas de usuário
func userIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}

	return id, true
}

func writeUserError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		var authErr *authenticating.AuthError
		if errors.As(err, &authErr) {
			apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}

// GetUser retorna o perfil de um usuário pelo ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			writeUserError(w, err, "Erro ao buscar usuário")
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
		}
	}
}

// CreateUser cadastra um novo usuário da agência
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user *domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		created, err := service.CreateUser(user)
		if err != nil {
			writeUserError(w, err, "Erro ao criar usuário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// ListUsers lista todos os usuários. Restrito a administradores
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem listar todos os usuários", nil)
			return
		}

		users, err := service.ListUser()
		if err != nil {
			writeUserError(w, err, "Erro ao buscar usuários")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateUser atualiza o perfil de um usuário. O próprio usuário pode editar
// seu perfil; somente administradores editam outros usuários ou alteram o papel
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		updateReq.ID = id

		if updateReq.RoleID != nil && userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar o tipo de usuário", nil)
			return
		}

		if err := service.UpdateUser(&updateReq); err != nil {
			writeUserError(w, err, "Erro ao atualizar usuário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
