package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
)

type MountMetricsCollector struct {
	member apis.StorageMember

	countMetricsDesc *prometheus.Desc
}

func newCollectorForMount(member apis.StorageMember) prometheus.Collector {
	return &MountMetricsCollector{
		member: member,
		countMetricsDesc: prometheus.NewDesc(
			"bindstor_mount_count",
			"The number of live mount handles per volume.",
			[]string{"volumeName"},
			nil,
		),
	}
}

func (mc *MountMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *MountMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for Mount ...")

	mountCount := map[string]int64{}
	for _, m := range mc.member.ListMounts() {
		mountCount[m.VolumeName]++
	}
	for volName, count := range mountCount {
		ch <- prometheus.MustNewConstMetric(
			mc.countMetricsDesc,
			prometheus.GaugeValue,
			float64(count),
			volName,
		)
	}
}
