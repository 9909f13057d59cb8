package v1alpha1

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"
	"sigs.k8s.io/yaml"
)

// variables
var (
	ErrorInvalidQuantity   = errors.New("invalid storage quantity")
	ErrorInvalidAccessMode = errors.New("invalid access mode")
	ErrorNoAccessMode      = errors.New("no access mode specified")
)

// ClaimDescriptor is the declarative input shape accepted for a claim
// submission, e.g. {"accessModes":["ReadWriteOnce"],"requestedStorage":"1Gi"}
type ClaimDescriptor struct {
	AccessModes      []AccessMode `json:"accessModes"`
	RequestedStorage string       `json:"requestedStorage"`
	StorageClass     *string      `json:"storageClass,omitempty"`
}

// VolumeDescriptor is the declarative input shape accepted for a volume
// registration by the infrastructure
type VolumeDescriptor struct {
	AccessModes  []AccessMode `json:"accessModes"`
	Capacity     string       `json:"capacity"`
	StorageClass string       `json:"storageClass,omitempty"`
}

// WorkloadDescriptor declares the mounts a workload requests. Each volumeRef
// resolves to a claim name
type WorkloadDescriptor struct {
	Mounts []WorkloadMount `json:"mounts"`
}

// WorkloadMount is one mount entry of a workload descriptor
type WorkloadMount struct {
	VolumeRef string `json:"volumeRef"`
	Path      string `json:"path"`
}

// ParseStorageQuantity parses a byte-magnitude quantity string, e.g.
// "1Gi" = 2^30 bytes, into a byte count
func ParseStorageQuantity(s string) (int64, error) {
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrorInvalidQuantity, s, err)
	}
	if q.Sign() <= 0 {
		return 0, fmt.Errorf("%w: %q: must be positive", ErrorInvalidQuantity, s)
	}
	return q.Value(), nil
}

func parseAccessModes(modes []AccessMode) (AccessMode, error) {
	if len(modes) == 0 {
		return "", ErrorNoAccessMode
	}
	// single mode per claim, following the artifact's accessModes list shape
	mode := modes[0]
	switch mode {
	case ReadWriteOnce, ReadWriteMany, ReadOnlyMany:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrorInvalidAccessMode, mode)
}

// ToClaimSpec converts the descriptor into a claim spec, validating the
// quantity grammar and access mode
func (d *ClaimDescriptor) ToClaimSpec() (ClaimSpec, error) {
	capacity, err := ParseStorageQuantity(d.RequestedStorage)
	if err != nil {
		return ClaimSpec{}, err
	}
	mode, err := parseAccessModes(d.AccessModes)
	if err != nil {
		return ClaimSpec{}, err
	}
	spec := ClaimSpec{
		RequiredCapacityBytes: capacity,
		AccessMode:            mode,
	}
	if d.StorageClass != nil {
		spec.StorageClass = *d.StorageClass
	}
	return spec, nil
}

// ToVolumeSpec converts the descriptor into a volume spec
func (d *VolumeDescriptor) ToVolumeSpec() (VolumeSpec, error) {
	capacity, err := ParseStorageQuantity(d.Capacity)
	if err != nil {
		return VolumeSpec{}, err
	}
	if len(d.AccessModes) == 0 {
		return VolumeSpec{}, ErrorNoAccessMode
	}
	for _, mode := range d.AccessModes {
		switch mode {
		case ReadWriteOnce, ReadWriteMany, ReadOnlyMany:
		default:
			return VolumeSpec{}, fmt.Errorf("%w: %q", ErrorInvalidAccessMode, mode)
		}
	}
	return VolumeSpec{
		CapacityBytes: capacity,
		AccessModes:   append([]AccessMode{}, d.AccessModes...),
		StorageClass:  d.StorageClass,
	}, nil
}

// DecodeClaimDescriptor decodes a JSON or YAML claim descriptor
func DecodeClaimDescriptor(data []byte) (*ClaimDescriptor, error) {
	desc := &ClaimDescriptor{}
	if err := yaml.UnmarshalStrict(data, desc); err != nil {
		return nil, err
	}
	return desc, nil
}

// DecodeWorkloadDescriptor decodes a JSON or YAML workload descriptor
func DecodeWorkloadDescriptor(data []byte) (*WorkloadDescriptor, error) {
	desc := &WorkloadDescriptor{}
	if err := yaml.UnmarshalStrict(data, desc); err != nil {
		return nil, err
	}
	return desc, nil
}
