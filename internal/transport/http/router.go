package httptransport

import (
	"net/http"

	"github.com/gorilla/mux"

	"samplehub/internal/httpx"
)

const uuidPattern = "[0-9a-fA-F-]{36}"

func Router(samples SampleServices, reports ReportServices, jwtSecret string) *mux.Router {
	router := mux.NewRouter()

	sampleHandler := NewSampleHandlers(samples)
	reportHandler := NewReportHandlers(reports)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(httpx.Protected(jwtSecret))

	api.HandleFunc("/samples", sampleHandler.ListSamples).Methods(http.MethodGet)
	api.HandleFunc("/samples/report", reportHandler.DownloadReport).Methods(http.MethodGet)
	api.HandleFunc("/samples/report/email", reportHandler.EmailReport).Methods(http.MethodPost)
	api.HandleFunc("/samples/{id:"+uuidPattern+"}", sampleHandler.GetSampleDetail).Methods(http.MethodGet)

	me := api.PathPrefix("/me").Subrouter()
	me.HandleFunc("/samples/{id:"+uuidPattern+"}", sampleHandler.GetUserSample).Methods(http.MethodGet)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
