package mount

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

type coordinator struct {
	resolver BoundVolumeResolver

	// mounts by request key, handles by ID. One live handle per triple
	mounts  map[string]*apisv1alpha1.Mount
	handles map[string]*apisv1alpha1.Mount

	// claimRefs counts live handles per claim
	claimRefs map[string]int

	lock   *sync.Mutex
	logger *log.Entry
}

// NewCoordinator creates a mount coordinator over the binder's view of the
// binding state
func NewCoordinator(resolver BoundVolumeResolver) Coordinator {
	return &coordinator{
		resolver:  resolver,
		mounts:    map[string]*apisv1alpha1.Mount{},
		handles:   map[string]*apisv1alpha1.Mount{},
		claimRefs: map[string]int{},
		lock:      &sync.Mutex{},
		logger:    log.WithField("Module", "MountCoordinator"),
	}
}

func (c *coordinator) RequestMount(workload string, claimName string, path string) (*apisv1alpha1.Mount, error) {
	request := apisv1alpha1.MountRequest{Workload: workload, ClaimName: claimName, MountPath: path}
	logCtx := c.logger.WithFields(log.Fields{"workload": workload, "claim": claimName, "path": path})

	// resolve outside the coordinator lock, the binder takes its own
	volumeName, err := c.resolver.ClaimBoundVolume(claimName)
	if err != nil {
		logCtx.WithError(err).Debug("Rejected a mount request")
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if existing, exists := c.mounts[request.Key()]; exists {
		logCtx.WithField("handle", existing.ID).Debug("Returned the existing mount handle")
		return copyMount(existing), nil
	}

	handle := &apisv1alpha1.Mount{
		ID:         uuid.New().String(),
		Request:    request,
		VolumeName: volumeName,
	}
	c.mounts[request.Key()] = handle
	c.handles[handle.ID] = handle
	c.claimRefs[claimName]++

	logCtx.WithFields(log.Fields{"handle": handle.ID, "volume": volumeName}).Debug("Issued a mount handle")
	return copyMount(handle), nil
}

func (c *coordinator) ReleaseMount(handleID string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	handle, exists := c.handles[handleID]
	if !exists {
		// already released, nothing to do
		return nil
	}

	delete(c.handles, handleID)
	delete(c.mounts, handle.Request.Key())
	claimName := handle.Request.ClaimName
	if c.claimRefs[claimName] <= 1 {
		delete(c.claimRefs, claimName)
	} else {
		c.claimRefs[claimName]--
	}

	c.logger.WithFields(log.Fields{"handle": handleID, "claim": claimName}).Debug("Released a mount handle")
	return nil
}

func (c *coordinator) IsClaimMounted(claimName string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.claimRefs[claimName] > 0
}

func (c *coordinator) List() []*apisv1alpha1.Mount {
	c.lock.Lock()
	defer c.lock.Unlock()

	mounts := make([]*apisv1alpha1.Mount, 0, len(c.handles))
	for _, handle := range c.handles {
		mounts = append(mounts, copyMount(handle))
	}
	sort.Slice(mounts, func(i, j int) bool { return mounts[i].ID < mounts[j].ID })
	return mounts
}

func copyMount(m *apisv1alpha1.Mount) *apisv1alpha1.Mount {
	out := *m
	return &out
}
