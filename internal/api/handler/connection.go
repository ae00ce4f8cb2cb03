package handler

import (
	"net/http"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/connecting"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
)

func ListConnections(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		connections, err := service.ListConnections(r.Context(), userID)
		if err != nil {
			writeUseCaseError(w, r, err, "Error listing connections")
			return
		}

		if connections == nil {
			connections = []*domain.CloudConnection{}
		}

		writeJSON(w, http.StatusOK, connections)
	})
}

// Connect stores the credentials in the body once the provider accepts them.
func Connect(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		var creds domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithField("provider", provider).Info("Connecting provider")

		conn, err := service.Connect(r.Context(), userID, provider, creds)
		if err != nil {
			writeUseCaseError(w, r, err, "Error connecting provider")
			return
		}

		writeJSON(w, http.StatusOK, conn)
	})
}

func Disconnect(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		if err := service.Disconnect(r.Context(), userID, provider); err != nil {
			writeUseCaseError(w, r, err, "Error disconnecting provider")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
}
