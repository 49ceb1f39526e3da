package main

import (
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/charithe/calcinput/pkg/calculator"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/plugin/ocgrpc"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/zpages"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const viewReportingPeriod = 15 * time.Second

// initOCPromExporter publishes the gRPC server views through reg so that
// /metrics serves them next to the calculator's own collectors.
func initOCPromExporter(reg prom.Registerer) (*prometheus.Exporter, error) {
	registry, ok := reg.(*prom.Registry)
	if !ok {
		return nil, errors.New("opencensus exporter needs a *prometheus.Registry")
	}

	if err := view.Register(ocgrpc.DefaultServerViews...); err != nil {
		return nil, errors.Wrap(err, "failed to register grpc views")
	}

	exporter, err := prometheus.NewExporter(prometheus.Options{Namespace: metricsNamespace, Registry: registry})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create prometheus exporter")
	}

	view.RegisterExporter(exporter)
	view.SetReportingPeriod(viewReportingPeriod)
	return exporter, nil
}

// statusHandler answers OK while the calculator reports SERVING.
func statusHandler(health healthpb.HealthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			io.Copy(ioutil.Discard, r.Body)
			r.Body.Close()
		}

		resp, err := health.Check(r.Context(), &healthpb.HealthCheckRequest{Service: calculator.ServiceName})
		if err != nil || resp.Status != healthpb.HealthCheckResponse_SERVING {
			http.Error(w, "NOT SERVING", http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, "OK")
	}
}

func newStatusMux(metrics http.Handler, health healthpb.HealthServer, debugEnabled bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", statusHandler(health))
	mux.Handle("/metrics", metrics)

	if debugEnabled {
		mux.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
		mux.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
		mux.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
		mux.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
		mux.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))
		mux.Handle("/debug/", http.StripPrefix("/debug", zpages.Handler))
	}
	return mux
}

func startHTTPServer(listener net.Listener, promExporter *prometheus.Exporter, health healthpb.HealthServer) *http.Server {
	logger := zap.L().Named("http")

	httpServer := &http.Server{
		Handler:           newStatusMux(promExporter, health, *debug),
		ErrorLog:          zap.NewStdLog(logger),
		ReadHeaderTimeout: httpTimeout,
		WriteTimeout:      httpTimeout,
		IdleTimeout:       httpTimeout,
	}

	go func() {
		zap.S().Infow("Starting HTTP server", "addr", *statusAddr)
		if err := httpServer.Serve(listener); err != http.ErrServerClosed {
			zap.S().Fatalw("Failed to start HTTP server", "error", err)
		}
	}()

	return httpServer
}
