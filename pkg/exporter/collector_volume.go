package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
)

type VolumeMetricsCollector struct {
	member apis.StorageMember

	stateMetricsDesc    *prometheus.Desc
	capacityMetricsDesc *prometheus.Desc
}

func newCollectorForVolume(member apis.StorageMember) prometheus.Collector {
	return &VolumeMetricsCollector{
		member: member,
		stateMetricsDesc: prometheus.NewDesc(
			"bindstor_volume_state_count",
			"The state summary of the pool volumes.",
			[]string{"storageClass", "state"},
			nil,
		),

		capacityMetricsDesc: prometheus.NewDesc(
			"bindstor_volume_capacity_bytes",
			"The capacity of the volume.",
			[]string{"volumeName", "storageClass"},
			nil,
		),
	}
}

func (mc *VolumeMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *VolumeMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for Volume ...")
	volumes := mc.member.ListVolumes()
	if len(volumes) == 0 {
		return
	}

	stateCount := map[string]map[string]int64{}
	for _, vol := range volumes {
		class := vol.Spec.StorageClass
		if stateCount[class] == nil {
			stateCount[class] = map[string]int64{}
		}
		stateCount[class][string(vol.Status.State)]++

		ch <- prometheus.MustNewConstMetric(
			mc.capacityMetricsDesc,
			prometheus.GaugeValue,
			float64(vol.Spec.CapacityBytes),
			vol.Name, class,
		)
	}

	for class, states := range stateCount {
		for state, count := range states {
			ch <- prometheus.MustNewConstMetric(
				mc.stateMetricsDesc,
				prometheus.GaugeValue,
				float64(count),
				class, state,
			)
		}
	}
}
