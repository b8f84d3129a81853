package handler

import (
	"net/http"

	"github.com/yossefJiy/agency-ops-api/internal/api/handler/router"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/agreeing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/authenticating"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/clienting"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/commissioning"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/reconciling"
	"github.com/yossefJiy/agency-ops-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserClients retorna as rotas de atribuição de clientes a gestores
func UserClients(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/clients",
			Method:      http.MethodGet,
			Handler:     GetMyClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/clients",
			Method:      http.MethodPut,
			Handler:     UpdateUserClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Clients(service clienting.ClientService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/archive",
			Method:      http.MethodPost,
			Handler:     ArchiveClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/integration",
			Method:      http.MethodGet,
			Handler:     GetClientIntegration(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/integration",
			Method:      http.MethodPut,
			Handler:     UpsertClientIntegration(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/settings/integrations",
			Method:      http.MethodGet,
			Handler:     GetIntegrationSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/settings/integrations",
			Method:      http.MethodPut,
			Handler:     UpdateIntegrationSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CommissionPlans(service commissioning.CommissionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/commission-plans",
			Method:      http.MethodGet,
			Handler:     ListCommissionPlans(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/commission-plans",
			Method:      http.MethodPost,
			Handler:     CreateCommissionPlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commission-plans/:plan_id",
			Method:      http.MethodPut,
			Handler:     UpdateCommissionPlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commission-plans/:plan_id/tiers",
			Method:      http.MethodPost,
			Handler:     AddCommissionTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commission-tiers/:tier_id",
			Method:      http.MethodPut,
			Handler:     UpdateCommissionTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commission-tiers/:tier_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCommissionTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/commission",
			Method:      http.MethodGet,
			Handler:     GetMonthlyCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ServiceCatalog(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodPut,
			Handler:     UpdateService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func ServiceLines(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/service-lines",
			Method:      http.MethodGet,
			Handler:     ListServiceLines(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/service-lines",
			Method:      http.MethodPost,
			Handler:     CreateServiceLine(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/service-lines/quick-add",
			Method:      http.MethodPost,
			Handler:     QuickAddServiceLine(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/service-lines/:line_id",
			Method:      http.MethodPut,
			Handler:     UpdateServiceLine(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/service-lines/:line_id",
			Method:      http.MethodDelete,
			Handler:     DeleteServiceLine(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Projects(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects",
			Method:      http.MethodGet,
			Handler:     ListProjects(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects",
			Method:      http.MethodPost,
			Handler:     CreateProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/projects/:id/template",
			Method:      http.MethodGet,
			Handler:     GetProjectTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id/template",
			Method:      http.MethodPost,
			Handler:     AddProjectRequiredService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/project-template-items/:item_id",
			Method:      http.MethodDelete,
			Handler:     RemoveProjectRequiredService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/projects/:id/generate-lines",
			Method:      http.MethodPost,
			Handler:     GenerateProjectServiceLines(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reconciliation(service reconciling.ReconciliationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/reconciliation",
			Method:      http.MethodGet,
			Handler:     GetReconciliationReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     ListClientSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/offline-revenue",
			Method:      http.MethodGet,
			Handler:     ListOfflineRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/offline-revenue",
			Method:      http.MethodPost,
			Handler:     UpsertOfflineRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offline-revenue/:entry_id",
			Method:      http.MethodDelete,
			Handler:     DeleteOfflineRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Agreements(service agreeing.AgreementService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/agreements",
			Method:      http.MethodGet,
			Handler:     ListClientAgreements(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/agreements",
			Method:      http.MethodPost,
			Handler:     CreateClientAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/agreements/:agreement_id",
			Method:      http.MethodPut,
			Handler:     UpdateAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/agreements/:agreement_id",
			Method:      http.MethodDelete,
			Handler:     DeleteAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/payouts",
			Method:      http.MethodGet,
			Handler:     ListClientPayouts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/payouts",
			Method:      http.MethodPost,
			Handler:     UpsertClientPayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/payouts/summary",
			Method:      http.MethodGet,
			Handler:     GetPayoutSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
