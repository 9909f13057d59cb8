package v1alpha1

// MountRequest asks to expose a bound claim's volume at a path for a workload
type MountRequest struct {
	// Workload is the reference of the consuming workload
	Workload string `json:"workload"`

	// ClaimName resolves to the claim whose bound volume is exposed
	ClaimName string `json:"claimName"`

	// MountPath is where the volume contents are exposed
	MountPath string `json:"mountPath"`
}

// Key identifies the (workload, claim, path) triple. Duplicate requests for
// the same key return the same mount handle
func (r *MountRequest) Key() string {
	return r.Workload + "/" + r.ClaimName + ":" + r.MountPath
}

// Mount is an active mount handle referencing a bound volume
type Mount struct {
	// ID of the handle, unique per (workload, claim, path) triple
	ID string `json:"id"`

	Request MountRequest `json:"request"`

	// VolumeName is the volume bound to the claim at mount time
	VolumeName string `json:"volumeName"`
}
