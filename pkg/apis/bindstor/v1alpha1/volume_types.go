package v1alpha1

// AccessMode is the constraint on how many consumers may read/write a volume concurrently
type AccessMode string

const (
	// ReadWriteOnce allows a single writer on a single node
	ReadWriteOnce AccessMode = "ReadWriteOnce"

	// ReadWriteMany allows many concurrent writers
	ReadWriteMany AccessMode = "ReadWriteMany"

	// ReadOnlyMany allows a single reader shared across many nodes
	ReadOnlyMany AccessMode = "ReadOnlyMany"
)

// State of a volume or claim
type State string

// volume states
const (
	VolumeStateUnbound State = "Unbound"
	VolumeStateBound   State = "Bound"
)

// VolumeSpec defines the storage offered by the underlying infrastructure
type VolumeSpec struct {
	// CapacityBytes is the total provisioned capacity of the volume
	CapacityBytes int64 `json:"capacityBytes"`

	// AccessModes are all the modes the volume supports. A claim may be
	// bound only if its requested mode is in this set
	AccessModes []AccessMode `json:"accessModes"`

	// StorageClass is the class label of the volume, matched exactly against
	// the claim's requested class
	StorageClass string `json:"storageClass,omitempty"`
}

// VolumeStatus defines the observed state of Volume
type VolumeStatus struct {
	State State `json:"state,omitempty"`

	// BoundClaim is the name of the claim exclusively owning this volume
	BoundClaim string `json:"boundClaim,omitempty"`
}

// Volume is a concrete unit of provisioned storage capacity
type Volume struct {
	Name string `json:"name"`

	Spec   VolumeSpec   `json:"spec,omitempty"`
	Status VolumeStatus `json:"status,omitempty"`
}

// HasAccessMode checks if the volume supports the mode
func (v *Volume) HasAccessMode(mode AccessMode) bool {
	for _, m := range v.Spec.AccessModes {
		if m == mode {
			return true
		}
	}
	return false
}

// IsBound checks if the volume is reserved for a claim
func (v *Volume) IsBound() bool {
	return v.Status.BoundClaim != ""
}

// DeepCopy returns a full copy of the volume
func (v *Volume) DeepCopy() *Volume {
	out := *v
	out.Spec.AccessModes = make([]AccessMode, len(v.Spec.AccessModes))
	copy(out.Spec.AccessModes, v.Spec.AccessModes)
	return &out
}
