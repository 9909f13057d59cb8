package rest

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/soheilhy/cmux"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
)

// Server interface
type Server interface {
	Run(stopCh <-chan struct{})
}

type restServer struct {
	name string

	httpPort int

	member apis.StorageMember

	logger *log.Entry
}

// New creates a rest server
func New(name string, httpPort int, member apis.StorageMember) Server {
	return &restServer{
		name:     name,
		httpPort: httpPort,
		member:   member,
		logger:   log.WithField("Module", "RESTServer"),
	}
}

// Run the rest server
func (rs *restServer) Run(stopCh <-chan struct{}) {

	go rs.startServer(stopCh)
}

func (rs *restServer) startServer(stopCh <-chan struct{}) {

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", rs.httpPort))
	if err != nil {
		rs.logger.Fatalf("Failed to listen: %v", err)
	}
	log.WithFields(log.Fields{
		"endpoint": listener.Addr().String(),
		"protocol": listener.Addr().Network(),
	}).Info("Listening for the status REST connections.")

	tcpm := cmux.New(listener)

	go rs.serveHTTP(tcpm.Match(cmux.Any()))

	if err := tcpm.Serve(); !strings.Contains(err.Error(), "use of closed network connection") {
		log.Fatal(err)
	}

	// Waiting for the stop signal
	<-stopCh
	rs.logger.Info("Got a stop signal to terminate REST server")
}

func (rs *restServer) serveHTTP(listener net.Listener) {

	router := mux.NewRouter().StrictSlash(true)
	for _, route := range rs.buildRoutes() {
		router.
			Name(route.Name).
			Methods(route.Method).
			Path(route.Pattern).
			Handler(route.HandlerFunc)
	}
	// start server on HTTP port
	rs.logger.WithFields(log.Fields{"http.port": rs.httpPort}).Debug("starting HTTP server")
	if err := http.Serve(listener, router); err != nil {
		rs.logger.WithError(err).Fatal("REST server run into problem")
	}
}
