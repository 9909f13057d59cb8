package binder

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/common"
	"github.com/bindstor/bindstor/pkg/storage"
)

// Binder matches pending claims to compatible volumes. It is the sole
// writer of binding state: every check-and-reserve runs as one critical
// section, so no reader observes a claim bound without its paired volume
type Binder struct {
	pool     storage.VolumePool
	registry storage.ClaimRegistry

	// bindings is the authoritative relation, injective in both directions
	bindings      map[string]apisv1alpha1.Binding
	volumeToClaim map[string]string

	matchTaskQueue *common.TaskQueue
	history        *EventHistory

	lock   *sync.RWMutex
	logger *log.Entry
}

// New creates a binder over the shared pool and registry state
func New(pool storage.VolumePool, registry storage.ClaimRegistry, conf apisv1alpha1.SystemConfig) *Binder {
	historyLimit := conf.EventHistoryLimit
	if historyLimit <= 0 {
		historyLimit = apisv1alpha1.DefaultEventHistoryLimit
	}
	return &Binder{
		pool:           pool,
		registry:       registry,
		bindings:       map[string]apisv1alpha1.Binding{},
		volumeToClaim:  map[string]string{},
		matchTaskQueue: common.NewTaskQueue("BinderMatch", conf.MaxRetries),
		history:        NewEventHistory(historyLimit),
		lock:           &sync.RWMutex{},
		logger:         log.WithField("Module", "Binder"),
	}
}

// Run starts the matching worker
func (b *Binder) Run(stopCh <-chan struct{}) {
	go b.startMatchTaskWorker(stopCh)
}

// RegisterVolume adds a volume into the pool and retries the oldest pending
// claims against it
func (b *Binder) RegisterVolume(vol *apisv1alpha1.Volume) error {
	if err := b.pool.Register(vol); err != nil {
		return err
	}
	b.matchTaskQueue.Add(vol.Name)
	return nil
}

// DestroyVolume models external destruction of a volume. A claim bound to
// it transitions to Lost, terminal until explicitly released
func (b *Binder) DestroyVolume(volumeName string) error {
	logCtx := b.logger.WithField("volume", volumeName)

	b.lock.Lock()
	defer b.lock.Unlock()

	orphanedClaim, err := b.pool.Destroy(volumeName)
	if err != nil {
		return err
	}
	if orphanedClaim == "" {
		return nil
	}

	delete(b.bindings, orphanedClaim)
	delete(b.volumeToClaim, volumeName)
	if err := b.registry.MarkLost(orphanedClaim); err != nil {
		logCtx.WithError(err).Error("Failed to mark the orphaned claim lost")
		return err
	}
	b.history.Record(TransitionEvent{
		Time:   time.Now(),
		Claim:  orphanedClaim,
		Volume: volumeName,
		From:   apisv1alpha1.ClaimStateBound,
		To:     apisv1alpha1.ClaimStateLost,
		Note:   "volume destroyed externally",
	})
	logCtx.WithField("claim", orphanedClaim).Warning("Volume destroyed, its claim is lost")
	return nil
}

// Bind runs one atomic check-and-reserve for the claim. If no eligible
// volume exists the claim stays Pending and the caller gets
// ErrorWaitingForCapacity, to be retried by the worker on pool changes
func (b *Binder) Bind(claimName string) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.bind(claimName)
}

// bind must be called with the lock held
func (b *Binder) bind(claimName string) error {
	logCtx := b.logger.WithField("claim", claimName)

	// re-check the claim state: it may have been withdrawn or bound since
	// the task was queued
	claim, err := b.registry.Get(claimName)
	if err != nil {
		return err
	}
	switch claim.Status.State {
	case apisv1alpha1.ClaimStateBound:
		return nil
	case apisv1alpha1.ClaimStateLost:
		// never silently rebind a lost claim
		return storage.ErrorClaimLost
	}

	it := b.pool.Find(claim.Spec.StorageClass, claim.Spec.RequiredCapacityBytes, claim.Spec.AccessMode)
	vol, ok := it.Next()
	if !ok {
		logCtx.Debug("No eligible volume, the claim stays pending")
		return storage.ErrorWaitingForCapacity
	}

	if err := b.pool.Reserve(vol.Name, claimName); err != nil {
		logCtx.WithError(err).WithField("volume", vol.Name).Error("Failed to reserve the selected volume")
		return err
	}
	if err := b.registry.MarkBound(claimName, vol.Name); err != nil {
		// the claim vanished mid-pass, roll the reservation back
		logCtx.WithError(err).Debug("Claim withdrawn during the matching pass")
		_ = b.pool.Unreserve(vol.Name)
		return err
	}

	binding := apisv1alpha1.Binding{ClaimName: claimName, VolumeName: vol.Name, CreateTime: time.Now()}
	b.bindings[claimName] = binding
	b.volumeToClaim[vol.Name] = claimName
	b.history.Record(TransitionEvent{
		Time:   binding.CreateTime,
		Claim:  claimName,
		Volume: vol.Name,
		From:   apisv1alpha1.ClaimStatePending,
		To:     apisv1alpha1.ClaimStateBound,
	})
	logCtx.WithField("volume", vol.Name).Debug("Bound a claim")
	return nil
}

// Unbind frees the claim's volume back to the pool and removes the binding
func (b *Binder) Unbind(claimName string) error {
	logCtx := b.logger.WithField("claim", claimName)

	b.lock.Lock()
	defer b.lock.Unlock()

	binding, exists := b.bindings[claimName]
	if !exists {
		return nil
	}

	delete(b.bindings, claimName)
	delete(b.volumeToClaim, binding.VolumeName)
	if err := b.pool.Unreserve(binding.VolumeName); err != nil && err != storage.ErrorVolumeNotFound {
		logCtx.WithError(err).Error("Failed to free the volume")
		return err
	}
	if err := b.registry.MarkReleased(claimName); err != nil && err != storage.ErrorClaimNotFound {
		return err
	}
	b.history.Record(TransitionEvent{
		Time:   time.Now(),
		Claim:  claimName,
		Volume: binding.VolumeName,
		From:   apisv1alpha1.ClaimStateBound,
		To:     apisv1alpha1.ClaimStateReleased,
	})
	logCtx.WithField("volume", binding.VolumeName).Debug("Unbound a claim")

	// the freed volume may satisfy an older pending claim
	b.matchTaskQueue.Add(binding.VolumeName)
	return nil
}

// MatchPending runs a FIFO matching pass over all pending claims, oldest
// first, and reports how many were bound
func (b *Binder) MatchPending() int {
	b.lock.Lock()
	defer b.lock.Unlock()

	bound := 0
	for _, claimName := range b.registry.Pending() {
		err := b.bind(claimName)
		if err == nil {
			bound++
			continue
		}
		if err != storage.ErrorWaitingForCapacity {
			b.logger.WithError(err).WithField("claim", claimName).Error("Failed to match a pending claim")
		}
	}
	return bound
}

// ClaimBoundVolume resolves the volume bound to the claim, for mount
// issuance. The read is consistent with in-flight transitions
func (b *Binder) ClaimBoundVolume(claimName string) (string, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	claim, err := b.registry.Get(claimName)
	if err != nil {
		return "", err
	}
	switch claim.Status.State {
	case apisv1alpha1.ClaimStateLost:
		return "", storage.ErrorClaimLost
	case apisv1alpha1.ClaimStateBound:
		return claim.Status.BoundVolume, nil
	}
	return "", storage.ErrorClaimNotBound
}

// Bindings returns a copy of the current binding relation
func (b *Binder) Bindings() []apisv1alpha1.Binding {
	b.lock.RLock()
	defer b.lock.RUnlock()

	bindings := make([]apisv1alpha1.Binding, 0, len(b.bindings))
	for _, binding := range b.bindings {
		bindings = append(bindings, binding)
	}
	return bindings
}

// GetClaim returns a consistent view of the claim
func (b *Binder) GetClaim(name string) (*apisv1alpha1.Claim, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.registry.Get(name)
}

// ListClaims returns a consistent view of all claims
func (b *Binder) ListClaims() []*apisv1alpha1.Claim {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.registry.List()
}

// GetVolume returns a consistent view of the volume
func (b *Binder) GetVolume(name string) (*apisv1alpha1.Volume, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.pool.Get(name)
}

// ListVolumes returns a consistent view of all volumes
func (b *Binder) ListVolumes() []*apisv1alpha1.Volume {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.pool.List()
}

// Events returns the recent transition history, newest last
func (b *Binder) Events() []TransitionEvent {
	return b.history.List()
}
