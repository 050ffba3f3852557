package api

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gorilla/mux"

	"CobranzaSaas/internal/config"
	"CobranzaSaas/internal/logger"
)

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	return r.RemoteAddr
}

// createReverseProxy returns a reverse proxy handler for the given target URL
func createReverseProxy(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logr := logger.GlobalLogger

		u, err := url.Parse(target)
		if err != nil {
			http.Error(w, "Bad target URL", http.StatusInternalServerError)
			return
		}
		proxy := httputil.NewSingleHostReverseProxy(u)

		rw := &responseWriter{ResponseWriter: w, statusCode: 200}
		proxy.ServeHTTP(rw, r)

		var msg string
		if rw.statusCode >= 400 {
			msg = fmt.Sprintf("[Gateway][ERROR] %s %s from %s -> %s, status %d, error: %s",
				r.Method, r.URL.Path, extractClientIP(r), target, rw.statusCode, rw.body.String())
		} else {
			msg = fmt.Sprintf("[Gateway] %s %s from %s -> %s, status %d",
				r.Method, r.URL.Path, extractClientIP(r), target, rw.statusCode)
		}
		if logr != nil {
			logr.LogAudit(msg)
		} else {
			log.Println(msg)
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture status code and response body
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

// StartGateway starts the API gateway server
func StartGateway() {
	router := NewRouter()

	log.Println("API Gateway started on " + config.GatewayAddr)
	if err := http.ListenAndServe(config.GatewayAddr, router); err != nil {
		log.Fatalf("Gateway server failed: %v", err)
	}
}

// NewRouter wires the gateway routes to the domain services.
func NewRouter() *mux.Router {
	router := mux.NewRouter()

	router.PathPrefix("/pagos/").HandlerFunc(createReverseProxy("http://localhost" + config.PagosAddr))
	router.PathPrefix("/reports/").HandlerFunc(createReverseProxy("http://localhost" + config.ReportsAddr))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("API Gateway is healthy"))
	}).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		msg := "[Gateway] " + r.URL.Path + " from " + extractClientIP(r) + " (route not found)"
		if logger.GlobalLogger != nil {
			logger.GlobalLogger.LogAudit(msg)
		} else {
			log.Println(msg)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 - Route not found"))
	})

	return router
}
