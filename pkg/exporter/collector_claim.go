package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
)

type ClaimMetricsCollector struct {
	member apis.StorageMember

	stateMetricsDesc     *prometheus.Desc
	bindingsMetricsDesc  *prometheus.Desc
	requestedMetricsDesc *prometheus.Desc
}

func newCollectorForClaim(member apis.StorageMember) prometheus.Collector {
	return &ClaimMetricsCollector{
		member: member,
		stateMetricsDesc: prometheus.NewDesc(
			"bindstor_claim_state_count",
			"The state summary of the registered claims.",
			[]string{"state"},
			nil,
		),

		bindingsMetricsDesc: prometheus.NewDesc(
			"bindstor_binding_count",
			"The number of live claim-volume bindings.",
			nil,
			nil,
		),

		requestedMetricsDesc: prometheus.NewDesc(
			"bindstor_claim_requested_bytes",
			"The capacity requested by the claim.",
			[]string{"claimName"},
			nil,
		),
	}
}

func (mc *ClaimMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *ClaimMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for Claim ...")

	stateCount := map[string]int64{}
	for _, claim := range mc.member.ListClaims() {
		stateCount[string(claim.Status.State)]++

		ch <- prometheus.MustNewConstMetric(
			mc.requestedMetricsDesc,
			prometheus.GaugeValue,
			float64(claim.Spec.RequiredCapacityBytes),
			claim.Name,
		)
	}
	for state, count := range stateCount {
		ch <- prometheus.MustNewConstMetric(
			mc.stateMetricsDesc,
			prometheus.GaugeValue,
			float64(count),
			state,
		)
	}

	ch <- prometheus.MustNewConstMetric(
		mc.bindingsMetricsDesc,
		prometheus.GaugeValue,
		float64(len(mc.member.ListBindings())),
	)
}
