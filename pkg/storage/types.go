package storage

import (
	"errors"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

// variables
var (
	ErrorVolumeExists   = errors.New("already exists volume")
	ErrorVolumeNotFound = errors.New("not found volume")
	ErrorVolumeBound    = errors.New("volume still reserved for a claim")

	ErrorClaimExists   = errors.New("already exists claim")
	ErrorClaimNotFound = errors.New("not found claim")
	ErrorClaimMounted  = errors.New("claim still referenced by a live mount")
	ErrorClaimNotBound = errors.New("claim not bound")
	ErrorClaimLost     = errors.New("claim lost its volume")

	// ErrorWaitingForCapacity is a steady state, not a failure. The caller
	// polls, the binder retries on pool changes
	ErrorWaitingForCapacity = errors.New("waiting for capacity")
)

/* A set of interfaces for the shared pool/registry state */

// VolumePool tracks the volumes offered by the underlying infrastructure
type VolumePool interface {
	// Register adds a new volume into the pool
	Register(vol *apisv1alpha1.Volume) error

	// Get returns a copy of the volume
	Get(name string) (*apisv1alpha1.Volume, error)

	// List returns copies of all volumes
	List() []*apisv1alpha1.Volume

	// Find walks the eligible unbound volumes in ascending capacity order.
	// Empty class matches any class label
	Find(class string, minCapacityBytes int64, mode apisv1alpha1.AccessMode) *VolumeIterator

	// Reserve marks a volume bound to a claim. Fails with ErrorVolumeBound
	// if already reserved
	Reserve(volumeName string, claimName string) error

	// Unreserve frees a volume back to the pool
	Unreserve(volumeName string) error

	// Release removes an unbound volume. Fails with ErrorVolumeBound while
	// a claim still references it
	Release(volumeName string) error

	// Destroy removes a volume unconditionally, modeling external
	// destruction. Returns the name of the claim left orphaned, if any
	Destroy(volumeName string) (string, error)
}

// ClaimRegistry holds the claims submitted by workloads
type ClaimRegistry interface {
	// Submit adds a new claim in Pending state, preserving submission order
	Submit(claim *apisv1alpha1.Claim) error

	// Get returns a copy of the claim
	Get(name string) (*apisv1alpha1.Claim, error)

	// List returns copies of all claims
	List() []*apisv1alpha1.Claim

	// Pending returns the names of pending claims, oldest first
	Pending() []string

	// Release destroys a claim, unbinding it first if bound. Fails with
	// ErrorClaimMounted while a live mount references it
	Release(claimName string) error

	// MarkBound/MarkReleased/MarkLost are binding state mutations, driven
	// by the binder only
	MarkBound(claimName string, volumeName string) error
	MarkReleased(claimName string) error
	MarkLost(claimName string) error

	// SetCollaborators wires in the unbinder and the mount checker once
	// they are constructed on top of the registry
	SetCollaborators(unbinder Unbinder, mounts MountChecker)
}

// Unbinder breaks an existing binding, freeing the volume back to the pool
type Unbinder interface {
	Unbind(claimName string) error
}

// MountChecker reports whether a live mount still references a claim
type MountChecker interface {
	IsClaimMounted(claimName string) bool
}
