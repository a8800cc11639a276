package handler

import (
	"net/http"

	"github.com/esteban-lambda/crm-api/internal/api/handler/router"
	"github.com/esteban-lambda/crm-api/internal/usecases/account"
	"github.com/esteban-lambda/crm-api/internal/usecases/authenticating"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/catalog"
	"github.com/esteban-lambda/crm-api/internal/usecases/contacting"
	"github.com/esteban-lambda/crm-api/internal/usecases/dealing"
	"github.com/esteban-lambda/crm-api/internal/usecases/documenting"
	"github.com/esteban-lambda/crm-api/internal/usecases/interacting"
	"github.com/esteban-lambda/crm-api/internal/usecases/notifying"
	"github.com/esteban-lambda/crm-api/internal/usecases/reporting"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
	"github.com/esteban-lambda/crm-api/internal/usecases/tasking"
	"github.com/esteban-lambda/crm-api/internal/usecases/templating"
	"github.com/esteban-lambda/crm-api/internal/usecases/timeline"
	"github.com/esteban-lambda/crm-api/pkg/middleware"
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
			// Gerentes criam os vendedores do próprio time
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
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

func Accounts(service account.AccountService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AccountList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     AccountCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodGet,
			Handler:     AccountGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     AccountUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     AccountDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Contacts(service contacting.ContactService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contacts",
			Method:      http.MethodGet,
			Handler:     ContactList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts",
			Method:      http.MethodPost,
			Handler:     ContactCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodGet,
			Handler:     ContactGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodPut,
			Handler:     ContactUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodDelete,
			Handler:     ContactDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/accounts/:id/contacts",
			Method:      http.MethodGet,
			Handler:     ContactListByAccount(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service catalog.CatalogService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ProductList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     ProductCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     ProductGet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     ProductUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     ProductDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Deals(
	service dealing.DealService,
	scoringService scoring.ScoringService,
	authorizationService authorizing.AuthorizationService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/deals",
			Method:      http.MethodGet,
			Handler:     DealList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals",
			Method:      http.MethodPost,
			Handler:     DealCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodGet,
			Handler:     DealGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodPut,
			Handler:     DealUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodDelete,
			Handler:     DealDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/deals/:id/products",
			Method:      http.MethodGet,
			Handler:     DealLineItemList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/products",
			Method:      http.MethodPost,
			Handler:     DealLineItemAdd(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/products/:item_id",
			Method:      http.MethodPut,
			Handler:     DealLineItemUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/products/:item_id",
			Method:      http.MethodDelete,
			Handler:     DealLineItemRemove(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/score",
			Method:      http.MethodGet,
			Handler:     DealScoreBreakdown(scoringService, service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/score/recompute",
			Method:      http.MethodPost,
			Handler:     DealScoreRecompute(scoringService, service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Interactions(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/interactions",
			Method:      http.MethodGet,
			Handler:     InteractionList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions",
			Method:      http.MethodPost,
			Handler:     InteractionCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodGet,
			Handler:     InteractionGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodPut,
			Handler:     InteractionUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodDelete,
			Handler:     InteractionDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/deals/:id/interactions",
			Method:      http.MethodGet,
			Handler:     InteractionListByDeal(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/next-contact",
			Method:      http.MethodGet,
			Handler:     NextContactSuggestion(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tasks(service tasking.TaskService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tasks",
			Method:      http.MethodGet,
			Handler:     TaskList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks",
			Method:      http.MethodPost,
			Handler:     TaskCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodGet,
			Handler:     TaskGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodPut,
			Handler:     TaskUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodDelete,
			Handler:     TaskDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/tasks/:id/complete",
			Method:      http.MethodPost,
			Handler:     TaskComplete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Documents(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/documents",
			Method:      http.MethodGet,
			Handler:     DocumentList(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents",
			Method:      http.MethodPost,
			Handler:     DocumentRegister(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:id",
			Method:      http.MethodGet,
			Handler:     DocumentGet(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:id",
			Method:      http.MethodDelete,
			Handler:     DocumentDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/deals/:id/documents",
			Method:      http.MethodGet,
			Handler:     DocumentListByDeal(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func EmailTemplates(service templating.TemplateService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/templates",
			Method:      http.MethodGet,
			Handler:     EmailTemplateList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates",
			Method:      http.MethodPost,
			Handler:     EmailTemplateCreate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodGet,
			Handler:     EmailTemplateGet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodPut,
			Handler:     EmailTemplateUpdate(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodDelete,
			Handler:     EmailTemplateDelete(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/templates/:id/render",
			Method:      http.MethodGet,
			Handler:     EmailTemplateRender(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Notifications(service notifying.NotificationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/notifications",
			Method:      http.MethodGet,
			Handler:     NotificationList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/notifications/unread-count",
			Method:      http.MethodGet,
			Handler:     NotificationUnreadCount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/notifications/read-all",
			Method:      http.MethodPost,
			Handler:     NotificationMarkAllRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notifications/:id/read",
			Method:      http.MethodPost,
			Handler:     NotificationMarkRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Timeline(service timeline.TimelineService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/timeline",
			Method:      http.MethodGet,
			Handler:     TimelineRecent(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id/timeline",
			Method:      http.MethodGet,
			Handler:     TimelineByDeal(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/timeline",
			Method:      http.MethodGet,
			Handler:     TimelineByAccount(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.ReportService, authorizationService authorizing.AuthorizationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/dashboard",
			Method:      http.MethodGet,
			Handler:     DashboardReport(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/sales",
			Method:      http.MethodGet,
			Handler:     SalesReport(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/pipeline",
			Method:      http.MethodGet,
			Handler:     PipelineReport(service, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Exports concentra os downloads CSV. As rotas são restritas a
// administradores já no middleware e revalidadas no serviço.
func Exports(
	accountService account.AccountService,
	contactService contacting.ContactService,
	dealService dealing.DealService,
	authorizationService authorizing.AuthorizationService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports/accounts",
			Method:      http.MethodGet,
			Handler:     AccountExport(accountService, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/exports/contacts",
			Method:      http.MethodGet,
			Handler:     ContactExport(contactService, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/exports/deals",
			Method:      http.MethodGet,
			Handler:     DealExport(dealService, authorizationService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
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
