package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"runtime"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/apiserver/router"
	"github.com/bindstor/bindstor/pkg/exporter"
	"github.com/bindstor/bindstor/pkg/member"
)

const (
	restServerDefaultPort = 8090
	apiServerDefaultPort  = 8080
	metricsDefaultPort    = 8385
)

var (
	debug             = flag.Bool("debug", false, "debug mode, false by default")
	memberName        = flag.String("name", "", "Member name")
	httpPort          = flag.Int("http-port", restServerDefaultPort, "HTTP port for REST server")
	apiPort           = flag.Int("api-port", apiServerDefaultPort, "HTTP port for the apiserver")
	metricsPort       = flag.Int("metrics-port", metricsDefaultPort, "HTTP port for the metrics endpoint")
	maxRetries        = flag.Int("max-retries", apisv1alpha1.DefaultMatchMaxRetries, "Max retries of a match task, 0 means retrying forever")
	eventHistoryLimit = flag.Int("event-history-limit", apisv1alpha1.DefaultEventHistoryLimit, "Max transition events kept in memory")
)

var BUILDVERSION, BUILDTIME, GOVERSION string

func printVersion() {
	log.Info(fmt.Sprintf("GitCommit:%q, BuildDate:%q, GoVersion:%q", BUILDVERSION, BUILDTIME, GOVERSION))
}

func setupLogging(enableDebug bool) {
	if enableDebug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
		// log with funcname, file fileds. eg: func=processMatch file="match_task_worker.go:43"
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			s := strings.Split(f.Function, ".")
			funcname := s[len(s)-1]
			filename := path.Base(f.File)
			return funcname, fmt.Sprintf("%s:%d", filename, f.Line)
		},
	})
	log.SetReportCaller(true)
}

func setupSignalHandler() <-chan struct{} {
	stopCh := make(chan struct{})
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		close(stopCh)
		<-c
		os.Exit(1)
	}()
	return stopCh
}

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	printVersion()

	setupLogging(*debug)

	if *memberName == "" {
		log.WithFields(log.Fields{"name": *memberName}).Error("Invalid member name")
		os.Exit(1)
	}

	systemConfig := apisv1alpha1.SystemConfig{
		MaxRetries:        *maxRetries,
		EventHistoryLimit: *eventHistoryLimit,
	}

	stopCh := setupSignalHandler()

	m := member.Member().
		ConfigureBase(*memberName, systemConfig).
		ConfigureBinder().
		ConfigureMounts().
		ConfigureRESTServer(*httpPort)

	// entrance of all the modules
	m.Run(stopCh)

	exporter.NewCollectorManager(m, *metricsPort).Run(stopCh)

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.CollectRoute(r, m)
	go func() {
		if err := r.Run(fmt.Sprintf(":%d", *apiPort)); err != nil {
			log.WithError(err).Fatal("Failed to run the apiserver")
		}
	}()

	<-stopCh
	log.Info("Shutting down")
}
