package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde a hora atual, o suficiente para o probe de
// liveness saber que o processo está vivo e atendendo
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
