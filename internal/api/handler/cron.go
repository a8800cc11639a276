package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/scheduler"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeScoreRefresh = "score-refresh"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ScoreRefreshService *scheduler.ScoreRefreshService
}

// RunCronJob dispara manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeScoreRefresh:
			if services.ScoreRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de scores não disponível", nil)
				return
			}
			services.ScoreRefreshService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: score-refresh", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ScoreRefreshService != nil {
			status["score_refresh"] = services.ScoreRefreshService.GetStatus()
		}

		writeJSON(w, status)
	}
}
