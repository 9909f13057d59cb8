package member

import (
	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/binder"
	memberrest "github.com/bindstor/bindstor/pkg/member/rest"
	"github.com/bindstor/bindstor/pkg/mount"
	"github.com/bindstor/bindstor/pkg/storage"
)

// Member is the storage member of the node.
// It has some data to be shared among all the modules.
// So, it's a global variable
var memberInstance apis.StorageMember

// Member gets member instance
func Member() apis.StorageMember {
	if memberInstance == nil {
		memberInstance = newMember()
	}
	return memberInstance
}

// New a storage member
func newMember() apis.StorageMember {
	return &storageMember{}
}

// storageMember composes the pool, registry, binder and mount coordinator.
// The shared state is explicitly owned here and passed by reference into
// each module's constructor
type storageMember struct {
	name string

	version string

	systemConfig apisv1alpha1.SystemConfig

	pool storage.VolumePool

	registry storage.ClaimRegistry

	volumeBinder *binder.Binder

	mountCoordinator mount.Coordinator

	restServer memberrest.Server
}

func (m *storageMember) ConfigureBase(name string, systemConfig apisv1alpha1.SystemConfig) apis.StorageMember {
	m.name = name
	m.version = apis.Version
	m.systemConfig = systemConfig
	m.pool = storage.NewVolumePool()
	m.registry = storage.NewClaimRegistry()
	return m
}

func (m *storageMember) ConfigureBinder() apis.StorageMember {
	if m.volumeBinder == nil {
		m.volumeBinder = binder.New(m.pool, m.registry, m.systemConfig)
	}
	return m
}

func (m *storageMember) ConfigureMounts() apis.StorageMember {
	if m.mountCoordinator == nil {
		m.mountCoordinator = mount.NewCoordinator(m.volumeBinder)
		m.registry.SetCollaborators(m.volumeBinder, m.mountCoordinator)
	}
	return m
}

func (m *storageMember) ConfigureRESTServer(httpPort int) apis.StorageMember {
	if m.restServer == nil {
		m.restServer = memberrest.New(m.name, httpPort, m)
	}
	return m
}

func (m *storageMember) Run(stopCh <-chan struct{}) {
	m.volumeBinder.Run(stopCh)

	if m.restServer != nil {
		m.restServer.Run(stopCh)
	}
}

func (m *storageMember) RegisterVolume(name string, desc *apisv1alpha1.VolumeDescriptor) error {
	spec, err := desc.ToVolumeSpec()
	if err != nil {
		return err
	}
	return m.volumeBinder.RegisterVolume(&apisv1alpha1.Volume{Name: name, Spec: spec})
}

func (m *storageMember) ReleaseVolume(name string) error {
	return m.pool.Release(name)
}

func (m *storageMember) DestroyVolume(name string) error {
	return m.volumeBinder.DestroyVolume(name)
}

func (m *storageMember) SubmitClaim(name string, desc *apisv1alpha1.ClaimDescriptor) error {
	spec, err := desc.ToClaimSpec()
	if err != nil {
		return err
	}
	if err := m.registry.Submit(&apisv1alpha1.Claim{Name: name, Spec: spec}); err != nil {
		return err
	}
	// an immediate match attempt. ErrorWaitingForCapacity is a visible
	// pending condition, the worker retries on pool changes
	return m.volumeBinder.Bind(name)
}

func (m *storageMember) ReleaseClaim(name string) error {
	return m.registry.Release(name)
}

func (m *storageMember) RequestMount(workload string, claimName string, path string) (*apisv1alpha1.Mount, error) {
	return m.mountCoordinator.RequestMount(workload, claimName, path)
}

func (m *storageMember) RequestWorkloadMounts(workload string, desc *apisv1alpha1.WorkloadDescriptor) ([]*apisv1alpha1.Mount, error) {
	existing := make(map[string]bool)
	for _, handle := range m.mountCoordinator.List() {
		existing[handle.ID] = true
	}

	mounts := make([]*apisv1alpha1.Mount, 0, len(desc.Mounts))
	for _, entry := range desc.Mounts {
		handle, err := m.mountCoordinator.RequestMount(workload, entry.VolumeRef, entry.Path)
		if err != nil {
			// roll back only the handles this call issued, the workload
			// gets all of its mounts or none. A handle returned
			// idempotently belongs to an earlier request and stays
			for _, issued := range mounts {
				if !existing[issued.ID] {
					_ = m.mountCoordinator.ReleaseMount(issued.ID)
				}
			}
			return nil, err
		}
		mounts = append(mounts, handle)
	}
	return mounts, nil
}

func (m *storageMember) ReleaseMount(handleID string) error {
	return m.mountCoordinator.ReleaseMount(handleID)
}

func (m *storageMember) GetVolume(name string) (*apisv1alpha1.Volume, error) {
	return m.volumeBinder.GetVolume(name)
}

func (m *storageMember) ListVolumes() []*apisv1alpha1.Volume {
	return m.volumeBinder.ListVolumes()
}

func (m *storageMember) GetClaim(name string) (*apisv1alpha1.Claim, error) {
	return m.volumeBinder.GetClaim(name)
}

func (m *storageMember) ListClaims() []*apisv1alpha1.Claim {
	return m.volumeBinder.ListClaims()
}

func (m *storageMember) ListBindings() []apisv1alpha1.Binding {
	return m.volumeBinder.Bindings()
}

func (m *storageMember) ListMounts() []*apisv1alpha1.Mount {
	return m.mountCoordinator.List()
}

func (m *storageMember) Events() []binder.TransitionEvent {
	return m.volumeBinder.Events()
}

func (m *storageMember) Binder() *binder.Binder {
	return m.volumeBinder
}

func (m *storageMember) Mounts() mount.Coordinator {
	return m.mountCoordinator
}

func (m *storageMember) Name() string {
	return m.name
}

func (m *storageMember) Version() string {
	return m.version
}
