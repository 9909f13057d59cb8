package storage

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

type volumePool struct {
	volumes map[string]*apisv1alpha1.Volume

	lock   *sync.Mutex
	logger *log.Entry
}

// NewVolumePool creates a volume pool
func NewVolumePool() VolumePool {
	return &volumePool{
		volumes: map[string]*apisv1alpha1.Volume{},
		lock:    &sync.Mutex{},
		logger:  log.WithField("Module", "VolumePool"),
	}
}

func (p *volumePool) Register(vol *apisv1alpha1.Volume) error {
	logCtx := p.logger.WithFields(log.Fields{"volume": vol.Name, "capacity": vol.Spec.CapacityBytes, "class": vol.Spec.StorageClass})

	p.lock.Lock()
	defer p.lock.Unlock()

	if _, exists := p.volumes[vol.Name]; exists {
		logCtx.Debug("Skipped the volume registration because of duplicate identity")
		return ErrorVolumeExists
	}

	registered := vol.DeepCopy()
	registered.Status.State = apisv1alpha1.VolumeStateUnbound
	registered.Status.BoundClaim = ""
	p.volumes[vol.Name] = registered

	logCtx.Debug("Registered a volume into the pool")
	return nil
}

func (p *volumePool) Get(name string) (*apisv1alpha1.Volume, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	vol, exists := p.volumes[name]
	if !exists {
		return nil, ErrorVolumeNotFound
	}
	return vol.DeepCopy(), nil
}

func (p *volumePool) List() []*apisv1alpha1.Volume {
	p.lock.Lock()
	defer p.lock.Unlock()

	vols := make([]*apisv1alpha1.Volume, 0, len(p.volumes))
	for _, vol := range p.volumes {
		vols = append(vols, vol.DeepCopy())
	}
	sort.Slice(vols, func(i, j int) bool { return vols[i].Name < vols[j].Name })
	return vols
}

// Find takes an ordered snapshot of the eligible volume names under the
// lock. Eligibility is re-checked lazily at each Next() so a volume
// reserved in between is skipped
func (p *volumePool) Find(class string, minCapacityBytes int64, mode apisv1alpha1.AccessMode) *VolumeIterator {
	p.lock.Lock()
	defer p.lock.Unlock()

	candidates := make([]*apisv1alpha1.Volume, 0, len(p.volumes))
	for _, vol := range p.volumes {
		if p.isEligible(vol, class, minCapacityBytes, mode) {
			candidates = append(candidates, vol)
		}
	}
	// first-fit: ascending capacity minimizes waste, name breaks the tie
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Spec.CapacityBytes != candidates[j].Spec.CapacityBytes {
			return candidates[i].Spec.CapacityBytes < candidates[j].Spec.CapacityBytes
		}
		return candidates[i].Name < candidates[j].Name
	})
	names := make([]string, len(candidates))
	for i, vol := range candidates {
		names[i] = vol.Name
	}

	return &VolumeIterator{
		pool:             p,
		names:            names,
		class:            class,
		minCapacityBytes: minCapacityBytes,
		mode:             mode,
	}
}

// isEligible must be called with the lock held
func (p *volumePool) isEligible(vol *apisv1alpha1.Volume, class string, minCapacityBytes int64, mode apisv1alpha1.AccessMode) bool {
	if vol.IsBound() {
		return false
	}
	if vol.Spec.CapacityBytes < minCapacityBytes {
		return false
	}
	if class != "" && vol.Spec.StorageClass != class {
		return false
	}
	return vol.HasAccessMode(mode)
}

func (p *volumePool) Reserve(volumeName string, claimName string) error {
	logCtx := p.logger.WithFields(log.Fields{"volume": volumeName, "claim": claimName})

	p.lock.Lock()
	defer p.lock.Unlock()

	vol, exists := p.volumes[volumeName]
	if !exists {
		return ErrorVolumeNotFound
	}
	if vol.IsBound() {
		logCtx.WithField("boundClaim", vol.Status.BoundClaim).Debug("Volume is already reserved")
		return ErrorVolumeBound
	}

	vol.Status.State = apisv1alpha1.VolumeStateBound
	vol.Status.BoundClaim = claimName
	logCtx.Debug("Reserved a volume for a claim")
	return nil
}

func (p *volumePool) Unreserve(volumeName string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	vol, exists := p.volumes[volumeName]
	if !exists {
		return ErrorVolumeNotFound
	}

	vol.Status.State = apisv1alpha1.VolumeStateUnbound
	vol.Status.BoundClaim = ""
	p.logger.WithField("volume", volumeName).Debug("Freed a volume back to the pool")
	return nil
}

func (p *volumePool) Release(volumeName string) error {
	logCtx := p.logger.WithField("volume", volumeName)

	p.lock.Lock()
	defer p.lock.Unlock()

	vol, exists := p.volumes[volumeName]
	if !exists {
		return ErrorVolumeNotFound
	}
	if vol.IsBound() {
		logCtx.WithField("boundClaim", vol.Status.BoundClaim).Debug("Rejected the release of a reserved volume")
		return ErrorVolumeBound
	}

	delete(p.volumes, volumeName)
	logCtx.Debug("Released a volume from the pool")
	return nil
}

func (p *volumePool) Destroy(volumeName string) (string, error) {
	logCtx := p.logger.WithField("volume", volumeName)

	p.lock.Lock()
	defer p.lock.Unlock()

	vol, exists := p.volumes[volumeName]
	if !exists {
		return "", ErrorVolumeNotFound
	}

	orphanedClaim := vol.Status.BoundClaim
	delete(p.volumes, volumeName)
	if orphanedClaim != "" {
		logCtx.WithField("claim", orphanedClaim).Info("Destroyed a volume, orphaning its claim")
	} else {
		logCtx.Debug("Destroyed an unbound volume")
	}
	return orphanedClaim, nil
}

// VolumeIterator is a lazily-produced finite sequence of eligible unbound
// volumes, ordered by ascending capacity
type VolumeIterator struct {
	pool *volumePool

	names []string
	pos   int

	class            string
	minCapacityBytes int64
	mode             apisv1alpha1.AccessMode
}

// Next returns the next still-eligible volume, or false when exhausted
func (it *VolumeIterator) Next() (*apisv1alpha1.Volume, bool) {
	it.pool.lock.Lock()
	defer it.pool.lock.Unlock()

	for it.pos < len(it.names) {
		name := it.names[it.pos]
		it.pos++
		vol, exists := it.pool.volumes[name]
		if !exists {
			continue
		}
		if it.pool.isEligible(vol, it.class, it.minCapacityBytes, it.mode) {
			return vol.DeepCopy(), true
		}
	}
	return nil, false
}
