package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	chim "github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "server")

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Fatal("failed to marshal response")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) // nolint:errcheck,gosec
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeErrorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	writeError(w, status, fmt.Sprintf(format, args...))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	log.WithField("request_id", chim.GetReqID(ctx)).Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	writeInternalError(ctx, w, fmt.Sprintf(format, args...))
}
