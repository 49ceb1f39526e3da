package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/charithe/calcinput/pkg/calculator"
	"github.com/charithe/calcinput/pkg/v1pb"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.opencensus.io/plugin/ocgrpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/channelz/service"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	httpTimeout = 5 * time.Second

	// metricsNamespace prefixes the opencensus grpc views.
	metricsNamespace = "calcinput"
)

var (
	app = kingpin.New("calcinput-server", "Formula evaluation and field editing server")

	debug      = app.Flag("debug", "Enable debug mode").Envar("CALCINPUT_DEBUG").Bool()
	listenAddr = app.Flag("listen_addr", "Listen address").Default(":8080").Envar("CALCINPUT_LISTEN_ADDR").String()
	logLevel   = app.Flag("log_level", "Log level").Default("info").Envar("CALCINPUT_LOG_LEVEL").Enum("error", "warn", "info", "debug")
	statusAddr = app.Flag("status_addr", "Status address").Default(":5000").Envar("CALCINPUT_STATUS_ADDR").String()
	tlsCA      = app.Flag("tls_ca", "Path to TLS CA certificate").Envar("CALCINPUT_TLS_CA").ExistingFile()
	tlsCert    = app.Flag("tls_cert", "Path to TLS certificate").Envar("CALCINPUT_TLS_CERT").ExistingFile()
	tlsKey     = app.Flag("tls_key", "Path to TLS key").Envar("CALCINPUT_TLS_KEY").ExistingFile()
)

func main() {
	_ = kingpin.MustParse(app.Parse(os.Args[1:]))

	initLogging(*logLevel)
	startServer()
}

func startServer() {
	promExporter, err := initOCPromExporter(prom.DefaultRegisterer)
	if err != nil {
		zap.S().Fatalw("Failed to create OpenCensus exporter", "error", err)
	}

	svc, err := calculator.NewService(prom.DefaultRegisterer)
	if err != nil {
		zap.S().Fatalw("Failed to create calculator service", "error", err)
	}

	grpcListener, httpListener := startListeners()
	grpcServer := startGRPCServer(grpcListener, svc)
	statusServer := startHTTPServer(httpListener, promExporter, svc)

	// await interruption
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt)
	<-shutdownChan

	zap.S().Info("Shutting down")
	svc.Shutdown()
	grpcServer.GracefulStop()

	ctx, cancelFunc := context.WithTimeout(context.Background(), httpTimeout)
	defer cancelFunc()
	if err := statusServer.Shutdown(ctx); err != nil {
		zap.S().Warnw("Status server did not shut down cleanly", "error", err)
	}
}

func startListeners() (net.Listener, net.Listener) {
	grpcListener, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		zap.S().Fatalw("Failed to create grpc listener", "error", err)
	}

	if *tlsKey != "" && *tlsCert != "" {
		zap.S().Info("Configuring TLS")
		tlsConf, err := getTLSConfig(*tlsCert, *tlsKey, *tlsCA)
		if err != nil {
			zap.S().Fatalw("Failed to configure TLS", "error", err)
		}

		grpcListener = tlsListener(grpcListener, tlsConf)
	}

	httpListener, err := net.Listen("tcp", *statusAddr)
	if err != nil {
		zap.S().Fatalw("Failed to create http listener", "error", err)
	}

	return grpcListener, httpListener
}

func grpcServerOptions(grpcLogger *zap.Logger) []grpc.ServerOption {
	codeToLevel := grpc_zap.CodeToLevel(func(code codes.Code) zapcore.Level {
		switch code {
		case codes.OK:
			return zapcore.DebugLevel
		case codes.InvalidArgument:
			// rejected formulas are routine
			return zapcore.InfoLevel
		}
		return grpc_zap.DefaultCodeToLevel(code)
	})

	return []grpc.ServerOption{
		grpc.StatsHandler(&ocgrpc.ServerHandler{}),
		grpc_middleware.WithUnaryServerChain(
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_zap.UnaryServerInterceptor(grpcLogger, grpc_zap.WithLevels(codeToLevel)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc_middleware.WithStreamServerChain(
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_zap.StreamServerInterceptor(grpcLogger, grpc_zap.WithLevels(codeToLevel)),
			grpc_recovery.StreamServerInterceptor(),
		),
	}
}

func startGRPCServer(listener net.Listener, svc *calculator.Service) *grpc.Server {
	grpc.EnableTracing = *debug
	grpcServer := grpc.NewServer(grpcServerOptions(zap.L().Named("grpc"))...)

	v1pb.RegisterCalculatorServer(grpcServer, svc)
	healthpb.RegisterHealthServer(grpcServer, svc)

	reflection.Register(grpcServer)
	service.RegisterChannelzServiceToServer(grpcServer)

	go func() {
		zap.S().Infow("Starting grpc server", "addr", *listenAddr)
		if err := grpcServer.Serve(listener); err != nil {
			zap.S().Fatalw("grpc server failed", "error", err)
		}
	}()

	return grpcServer
}
