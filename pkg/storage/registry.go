package storage

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/utils"
)

type claimRegistry struct {
	claims map[string]*apisv1alpha1.Claim

	// pendingQueue keeps the submission order for FIFO matching
	pendingQueue []string

	unbinder Unbinder
	mounts   MountChecker

	lock   *sync.Mutex
	logger *log.Entry
}

// NewClaimRegistry creates a claim registry
func NewClaimRegistry() ClaimRegistry {
	return &claimRegistry{
		claims:       map[string]*apisv1alpha1.Claim{},
		pendingQueue: []string{},
		lock:         &sync.Mutex{},
		logger:       log.WithField("Module", "ClaimRegistry"),
	}
}

// SetCollaborators wires the binder and the mount coordinator in. The
// registry cannot take them at construction time because both are built on
// top of it
func (r *claimRegistry) SetCollaborators(unbinder Unbinder, mounts MountChecker) {
	r.unbinder = unbinder
	r.mounts = mounts
}

func (r *claimRegistry) Submit(claim *apisv1alpha1.Claim) error {
	logCtx := r.logger.WithFields(log.Fields{"claim": claim.Name, "capacity": claim.Spec.RequiredCapacityBytes, "mode": claim.Spec.AccessMode})

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.claims[claim.Name]; exists {
		logCtx.Debug("Skipped the claim submission because of duplicate identity")
		return ErrorClaimExists
	}

	submitted := claim.DeepCopy()
	submitted.Status.State = apisv1alpha1.ClaimStatePending
	submitted.Status.BoundVolume = ""
	r.claims[claim.Name] = submitted
	r.pendingQueue = append(r.pendingQueue, claim.Name)

	logCtx.Debug("Submitted a claim")
	return nil
}

func (r *claimRegistry) Get(name string) (*apisv1alpha1.Claim, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	claim, exists := r.claims[name]
	if !exists {
		return nil, ErrorClaimNotFound
	}
	return claim.DeepCopy(), nil
}

func (r *claimRegistry) List() []*apisv1alpha1.Claim {
	r.lock.Lock()
	defer r.lock.Unlock()

	claims := make([]*apisv1alpha1.Claim, 0, len(r.claims))
	for _, claim := range r.claims {
		claims = append(claims, claim.DeepCopy())
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].Name < claims[j].Name })
	return claims
}

func (r *claimRegistry) Pending() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	names := make([]string, 0, len(r.pendingQueue))
	for _, name := range r.pendingQueue {
		if claim, exists := r.claims[name]; exists && claim.Status.State == apisv1alpha1.ClaimStatePending {
			names = append(names, name)
		}
	}
	return names
}

func (r *claimRegistry) Release(claimName string) error {
	logCtx := r.logger.WithField("claim", claimName)

	for {
		r.lock.Lock()
		claim, exists := r.claims[claimName]
		if !exists {
			r.lock.Unlock()
			return ErrorClaimNotFound
		}
		if r.mounts != nil && r.mounts.IsClaimMounted(claimName) {
			r.lock.Unlock()
			logCtx.Debug("Rejected the release of a mounted claim")
			return ErrorClaimMounted
		}
		if claim.Status.State != apisv1alpha1.ClaimStateBound {
			// the delete shares the critical section with the state check,
			// so a concurrent MarkBound cannot land on a vanishing claim
			delete(r.claims, claimName)
			r.pendingQueue = utils.RemoveStringItem(r.pendingQueue, claimName)
			r.lock.Unlock()
			logCtx.Debug("Released a claim")
			return nil
		}
		// drop the lock before unbinding: the binder re-enters the registry
		// to finish the transition. The claim may get rebound or mounted in
		// that window, so loop back over the guards before deleting
		r.lock.Unlock()

		if err := r.unbinder.Unbind(claimName); err != nil {
			logCtx.WithError(err).Error("Failed to unbind the claim")
			return err
		}
	}
}

func (r *claimRegistry) MarkBound(claimName string, volumeName string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	claim, exists := r.claims[claimName]
	if !exists {
		return ErrorClaimNotFound
	}

	claim.Status.State = apisv1alpha1.ClaimStateBound
	claim.Status.BoundVolume = volumeName
	r.pendingQueue = utils.RemoveStringItem(r.pendingQueue, claimName)
	r.logger.WithFields(log.Fields{"claim": claimName, "volume": volumeName}).Debug("Marked a claim bound")
	return nil
}

// MarkReleased is the registry side of Unbind, reached via the binder
func (r *claimRegistry) MarkReleased(claimName string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	claim, exists := r.claims[claimName]
	if !exists {
		return ErrorClaimNotFound
	}
	claim.Status.State = apisv1alpha1.ClaimStateReleased
	claim.Status.BoundVolume = ""
	return nil
}

func (r *claimRegistry) MarkLost(claimName string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	claim, exists := r.claims[claimName]
	if !exists {
		return ErrorClaimNotFound
	}

	claim.Status.State = apisv1alpha1.ClaimStateLost
	claim.Status.BoundVolume = ""
	r.logger.WithField("claim", claimName).Warning("Marked a claim lost, it must be released explicitly")
	return nil
}
