package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/notifying"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/middleware"
)

// Notificações são sempre do próprio usuário autenticado, então aqui não
// há resolução de escopo, só a identidade das claims.
func NotificationList(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		onlyUnread := r.URL.Query().Get("unread") == "true"

		notifications, err := service.ListNotifications(claims.UserID, onlyUnread)
		if err != nil {
			logrus.Error("Erro ao listar notificações:", err)
			writeNotificationError(w, err)
			return
		}

		writeJSON(w, notifications)
	})
}

func NotificationUnreadCount(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		count, err := service.CountUnread(claims.UserID)
		if err != nil {
			logrus.Error("Erro ao contar notificações não lidas:", err)
			writeNotificationError(w, err)
			return
		}

		writeJSON(w, map[string]int{"unread": count})
	})
}

func NotificationMarkRead(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		notificationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkAsRead(claims.UserID, notificationID); err != nil {
			logrus.Error("Erro ao marcar notificação como lida:", err)
			writeNotificationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NotificationMarkAllRead(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.MarkAllAsRead(claims.UserID); err != nil {
			logrus.Error("Erro ao marcar notificações como lidas:", err)
			writeNotificationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notifying.ErrNotificationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Notificação não encontrada", nil)
	case errors.Is(err, notifying.ErrNotRecipient):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Notificação pertence a outro usuário", nil)
	case errors.Is(err, notifying.ErrFetchNotification), errors.Is(err, notifying.ErrSaveNotification):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar notificações no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar notificação", nil)
	}
}
