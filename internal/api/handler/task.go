package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/tasking"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

func TaskList(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		// ?overdue=true devolve apenas tarefas vencidas ainda abertas
		if r.URL.Query().Get("overdue") == "true" {
			tasks, err := service.ListOverdue(grant)
			if err != nil {
				logrus.Error("Erro ao listar tarefas vencidas:", err)
				writeTaskError(w, err)
				return
			}
			writeJSON(w, tasks)
			return
		}

		tasks, err := service.ListTasks(grant)
		if err != nil {
			logrus.Error("Erro ao listar tarefas:", err)
			writeTaskError(w, err)
			return
		}

		writeJSON(w, tasks)
	})
}

func TaskCreate(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Task
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateTask(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar tarefa:", err)
			writeTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func TaskGet(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		task, err := service.GetTask(grant, taskID)
		if err != nil {
			logrus.Error("Erro ao buscar tarefa:", err)
			writeTaskError(w, err)
			return
		}

		writeJSON(w, task)
	})
}

func TaskUpdate(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Task
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateTask(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar tarefa:", err)
			writeTaskError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

// TaskComplete marca a tarefa como concluída registrando o horário
func TaskComplete(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		completed, err := service.CompleteTask(grant, taskID)
		if err != nil {
			logrus.Error("Erro ao concluir tarefa:", err)
			writeTaskError(w, err)
			return
		}

		writeJSON(w, completed)
	})
}

func TaskDelete(service tasking.TaskService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTask(grant, taskID); err != nil {
			logrus.Error("Erro ao remover tarefa:", err)
			writeTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Tarefa não encontrada", nil)
	case errors.Is(err, tasking.ErrInvalidTask):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título e responsável da tarefa são obrigatórios", nil)
	case errors.Is(err, tasking.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, tasking.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, tasking.ErrFetchTask), errors.Is(err, tasking.ErrSaveTask):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar tarefas no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar tarefa", nil)
	}
}
