package v1alpha1

// claim states
const (
	// ClaimStatePending means no compatible volume is reserved yet. It is a
	// legitimate steady state, not an error: the binder retries the match
	// whenever pool state changes
	ClaimStatePending State = "Pending"

	// ClaimStateBound means the claim exclusively owns a volume
	ClaimStateBound State = "Bound"

	// ClaimStateReleased means the claim was explicitly released and its
	// volume returned to the pool
	ClaimStateReleased State = "Released"

	// ClaimStateLost is terminal: the bound volume was destroyed externally.
	// A lost claim is never rebound, the caller must release it
	ClaimStateLost State = "Lost"
)

// ClaimSpec defines the storage requested by a workload
type ClaimSpec struct {
	// RequiredCapacityBytes is the minimum capacity of an eligible volume
	RequiredCapacityBytes int64 `json:"requiredCapacityBytes"`

	// AccessMode the volume must support
	AccessMode AccessMode `json:"accessMode"`

	// StorageClass restricts eligible volumes to an exact class label.
	// Empty means any class
	StorageClass string `json:"storageClass,omitempty"`
}

// ClaimStatus defines the observed state of Claim. It is mutated by the
// binder only
type ClaimStatus struct {
	State State `json:"state,omitempty"`

	// BoundVolume is the name of the volume reserved for this claim
	BoundVolume string `json:"boundVolume,omitempty"`
}

// Claim is a request for storage capacity with access-mode constraints
type Claim struct {
	Name string `json:"name"`

	Spec   ClaimSpec   `json:"spec,omitempty"`
	Status ClaimStatus `json:"status,omitempty"`
}

// IsBound checks if the claim owns a volume
func (c *Claim) IsBound() bool {
	return c.Status.State == ClaimStateBound
}

// DeepCopy returns a full copy of the claim
func (c *Claim) DeepCopy() *Claim {
	out := *c
	return &out
}
