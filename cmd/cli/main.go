package main

import (
	"context"
	"crypto/tls"
	"os"
	"time"

	"github.com/charithe/calcinput/pkg/calculator"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("calcinput", "Evaluate cost field formulas and drive a formula-aware field")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").Envar("CALCINPUT_ADDR").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	local     = app.Flag("local", "Evaluate in-process instead of calling the server").Bool()
	jsonOut   = app.Flag("json", "Print responses as JSON").Bool()
	verbose   = app.Flag("verbose", "Log field transitions").Short('v').Bool()
	timeout   = app.Flag("timeout", "Timeout for evaluation calls").Default("5s").Duration()

	evalCmd   = app.Command("eval", "Evaluate one or more expressions")
	evalExprs = evalCmd.Arg("expr", "Expressions such as =10+5*2").Required().Strings()

	fieldCmd = app.Command("field", "Drive a field with events read from stdin")
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*verbose)
	defer logger.Sync()

	out := newPrinter(os.Stdout, *jsonOut)

	var err error
	switch cmd {
	case evalCmd.FullCommand():
		err = doEval(logger, out)
	case fieldCmd.FullCommand():
		err = doField(logger, out)
	}

	if err != nil {
		logger.Sugar().Errorw("Command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	conf := zap.NewDevelopmentConfig()
	conf.DisableStacktrace = true
	conf.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := conf.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func doEval(logger *zap.Logger, out *printer) error {
	if *local {
		return out.evaluations(localEvaluations(*evalExprs))
	}

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results, err := remoteEvaluations(ctx, client, *evalExprs)
	if err != nil {
		return err
	}
	return out.evaluations(results)
}

func doField(logger *zap.Logger, out *printer) error {
	var sess calculator.Session
	if *local {
		sess = calculator.NewLocalSession(logger.Named("field"))
	} else {
		client, err := createClient()
		if err != nil {
			return err
		}
		defer client.Close()

		remote, err := client.EditField(context.Background())
		if err != nil {
			return err
		}
		sess = remote
	}
	defer sess.Close()

	logger.Info("Enter one event per line: set <value>, focus, type <text>, blur, enter, key <name>. Press Ctrl+D to end")
	return runEvents(os.Stdin, sess, out, logger)
}

func createClient() (*calculator.Client, error) {
	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, *addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}
