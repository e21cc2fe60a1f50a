// Package http is the REST transport: gorilla/mux routing over the chat and
// complaint services, JSON in and out.
package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"rail-madad/observability"
	"rail-madad/services"
)

// Container holds the dependencies the router wires into handlers.
type Container struct {
	ChatService      services.IChatService
	ComplaintService services.IComplaintService
	Monitor          *observability.MonitoringManager
	MaxUploadBytes   int64
	ListLimit        int
}

// NewRouter builds the /api/v1 route table.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	validate := validator.New()

	chatHandler := NewChatHandler(c.ChatService, validate)
	complaintHandler := NewComplaintHandler(c.ComplaintService, validate, c.MaxUploadBytes, c.ListLimit)
	trendsHandler := NewTrendsHandler(c.ComplaintService)

	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.Monitor.Snapshot())
	}).Methods("GET")

	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/chat/send", chatHandler.Send).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/capabilities", chatHandler.Capabilities).Methods("GET", "OPTIONS")

	v1.HandleFunc("/complaints/submit", complaintHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/complaints/status/{id}", complaintHandler.Status).Methods("GET", "OPTIONS")
	v1.HandleFunc("/complaints/status/{id}", complaintHandler.UpdateStatus).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/complaints/list", complaintHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/complaints/stats", complaintHandler.Stats).Methods("GET", "OPTIONS")
	v1.HandleFunc("/complaints/search", complaintHandler.Search).Methods("GET", "OPTIONS")

	v1.HandleFunc("/trends/", trendsHandler.Trends).Methods("GET", "OPTIONS")
	v1.HandleFunc("/trends/export/csv", trendsHandler.ExportCSV).Methods("GET", "OPTIONS")
	v1.HandleFunc("/trends/urgency/distribution", trendsHandler.UrgencyDistribution).Methods("GET", "OPTIONS")
	v1.HandleFunc("/trends/department/stats", trendsHandler.DepartmentStats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
