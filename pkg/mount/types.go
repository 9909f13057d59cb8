package mount

import (
	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

// BoundVolumeResolver resolves the volume currently bound to a claim. It
// fails with ErrorClaimNotBound or ErrorClaimLost when no mount may be
// served for the claim
type BoundVolumeResolver interface {
	ClaimBoundVolume(claimName string) (string, error)
}

// Coordinator exposes bound volumes at requested mount points
type Coordinator interface {
	// RequestMount issues a mount handle for a (workload, claim, path)
	// triple. Duplicate requests return the existing handle
	RequestMount(workload string, claimName string, path string) (*apisv1alpha1.Mount, error)

	// ReleaseMount drops a handle. It always succeeds and is idempotent on
	// an already-released handle
	ReleaseMount(handleID string) error

	// IsClaimMounted reports whether a live handle references the claim
	IsClaimMounted(claimName string) bool

	// List returns copies of all live handles
	List() []*apisv1alpha1.Mount
}
