package apis

import (
	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/binder"
	"github.com/bindstor/bindstor/pkg/mount"
)

// consts
const (
	Version = "1.0.0"
)

// StorageMember is the operation surface consumed by the external
// reconciliation loop. All errors are returned synchronously, nothing is
// retried internally
type StorageMember interface {
	Run(stopCh <-chan struct{})

	// ******  configuration ******* //
	ConfigureBase(name string, systemConfig apisv1alpha1.SystemConfig) StorageMember

	ConfigureBinder() StorageMember

	ConfigureMounts() StorageMember

	ConfigureRESTServer(httpPort int) StorageMember

	// ****** volume operations ****** //
	RegisterVolume(name string, desc *apisv1alpha1.VolumeDescriptor) error

	ReleaseVolume(name string) error

	DestroyVolume(name string) error

	// ****** claim operations ****** //
	SubmitClaim(name string, desc *apisv1alpha1.ClaimDescriptor) error

	ReleaseClaim(name string) error

	// ****** mount operations ****** //
	RequestMount(workload string, claimName string, path string) (*apisv1alpha1.Mount, error)

	RequestWorkloadMounts(workload string, desc *apisv1alpha1.WorkloadDescriptor) ([]*apisv1alpha1.Mount, error)

	ReleaseMount(handleID string) error

	// ****** state queries ****** //
	GetVolume(name string) (*apisv1alpha1.Volume, error)
	ListVolumes() []*apisv1alpha1.Volume
	GetClaim(name string) (*apisv1alpha1.Claim, error)
	ListClaims() []*apisv1alpha1.Claim
	ListBindings() []apisv1alpha1.Binding
	ListMounts() []*apisv1alpha1.Mount
	Events() []binder.TransitionEvent

	// access the modules
	Binder() *binder.Binder

	Mounts() mount.Coordinator

	Name() string

	Version() string
}
