package exporter

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
)

type CollectorManager struct {
	member apis.StorageMember

	port int
}

func NewCollectorManager(member apis.StorageMember, port int) *CollectorManager {
	return &CollectorManager{member: member, port: port}
}

func (mc *CollectorManager) Run(stopCh <-chan struct{}) {
	newRegister := prometheus.NewRegistry()
	newRegister.MustRegister(newCollectorForVolume(mc.member))
	newRegister.MustRegister(newCollectorForClaim(mc.member))
	newRegister.MustRegister(newCollectorForMount(mc.member))

	serveMux := http.NewServeMux()
	serveMux.Handle("/metrics", promhttp.HandlerFor(newRegister, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", mc.port), serveMux); err != nil {
			log.WithError(err).Error("Failed to serve the metrics endpoint")
		}
	}()
}
