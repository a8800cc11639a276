package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/reporting"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

// DashboardReport monta o painel principal respeitando o escopo do usuário:
// vendedores veem seus próprios números, gerentes os do time, admins tudo
func DashboardReport(service reporting.ReportService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		report, err := service.Dashboard(grant)
		if err != nil {
			logrus.Error("Erro ao montar dashboard:", err)
			writeReportError(w, err)
			return
		}

		writeJSON(w, report)
	})
}

func SalesReport(service reporting.ReportService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		periodDays := 0
		if raw := r.URL.Query().Get("period_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro period_days deve ser um inteiro positivo", nil)
				return
			}
			periodDays = parsed
		}

		report, err := service.Sales(grant, periodDays)
		if err != nil {
			logrus.Error("Erro ao montar relatório de vendas:", err)
			writeReportError(w, err)
			return
		}

		writeJSON(w, report)
	})
}

func PipelineReport(service reporting.ReportService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		report, err := service.Pipeline(grant)
		if err != nil {
			logrus.Error("Erro ao montar previsão de pipeline:", err)
			writeReportError(w, err)
			return
		}

		writeJSON(w, report)
	})
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrFetchReport) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados do relatório", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
}
