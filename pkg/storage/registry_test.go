package storage

import (
	"testing"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

type fakeUnbinder struct {
	registry    ClaimRegistry
	unbound     []string
	afterUnbind func(claimName string)
}

func (f *fakeUnbinder) Unbind(claimName string) error {
	f.unbound = append(f.unbound, claimName)
	if err := f.registry.MarkReleased(claimName); err != nil {
		return err
	}
	if f.afterUnbind != nil {
		f.afterUnbind(claimName)
	}
	return nil
}

type fakeMountChecker struct {
	mounted map[string]bool
}

func (f *fakeMountChecker) IsClaimMounted(claimName string) bool {
	return f.mounted[claimName]
}

func newTestClaim(name string, capacity int64) *apisv1alpha1.Claim {
	return &apisv1alpha1.Claim{
		Name: name,
		Spec: apisv1alpha1.ClaimSpec{
			RequiredCapacityBytes: capacity,
			AccessMode:            apisv1alpha1.ReadWriteOnce,
		},
	}
}

func Test_claimRegistry_Submit(t *testing.T) {
	registry := NewClaimRegistry()

	if err := registry.Submit(newTestClaim("claim-1", 1<<30)); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}
	if err := registry.Submit(newTestClaim("claim-1", 1<<30)); err != ErrorClaimExists {
		t.Errorf("Submit() error = %v, want ErrorClaimExists", err)
	}

	claim, err := registry.Get("claim-1")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if claim.Status.State != apisv1alpha1.ClaimStatePending {
		t.Errorf("Get() state = %v, want Pending", claim.Status.State)
	}
}

func Test_claimRegistry_Pending_fifo(t *testing.T) {
	registry := NewClaimRegistry()
	for _, name := range []string{"claim-c", "claim-a", "claim-b"} {
		if err := registry.Submit(newTestClaim(name, 1<<30)); err != nil {
			t.Fatalf("Submit(%s) unexpected error = %v", name, err)
		}
	}

	// submission order, not lexical order
	want := []string{"claim-c", "claim-a", "claim-b"}
	got := registry.Pending()
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending() = %v, want %v", got, want)
			break
		}
	}

	// a bound claim drops out of the queue
	if err := registry.MarkBound("claim-a", "vol-1"); err != nil {
		t.Fatalf("MarkBound() unexpected error = %v", err)
	}
	got = registry.Pending()
	if len(got) != 2 || got[0] != "claim-c" || got[1] != "claim-b" {
		t.Errorf("Pending() after bind = %v, want [claim-c claim-b]", got)
	}
}

func Test_claimRegistry_Release(t *testing.T) {
	registry := NewClaimRegistry()
	unbinder := &fakeUnbinder{registry: registry}
	mounts := &fakeMountChecker{mounted: map[string]bool{}}
	registry.SetCollaborators(unbinder, mounts)

	_ = registry.Submit(newTestClaim("claim-1", 1<<30))
	_ = registry.MarkBound("claim-1", "vol-1")

	// a mounted claim cannot be released
	mounts.mounted["claim-1"] = true
	if err := registry.Release("claim-1"); err != ErrorClaimMounted {
		t.Errorf("Release() error = %v, want ErrorClaimMounted", err)
	}
	if len(unbinder.unbound) != 0 {
		t.Errorf("Release() unbound %v while mounted", unbinder.unbound)
	}

	mounts.mounted["claim-1"] = false
	if err := registry.Release("claim-1"); err != nil {
		t.Fatalf("Release() unexpected error = %v", err)
	}
	if len(unbinder.unbound) != 1 || unbinder.unbound[0] != "claim-1" {
		t.Errorf("Release() unbound = %v, want [claim-1]", unbinder.unbound)
	}

	// gone for good, a resubmission starts a fresh lifecycle
	if _, err := registry.Get("claim-1"); err != ErrorClaimNotFound {
		t.Errorf("Get() error = %v, want ErrorClaimNotFound", err)
	}
	if err := registry.Submit(newTestClaim("claim-1", 1<<30)); err != nil {
		t.Errorf("Submit() after release unexpected error = %v", err)
	}

	if err := registry.Release("no-such"); err != ErrorClaimNotFound {
		t.Errorf("Release() error = %v, want ErrorClaimNotFound", err)
	}
}

func Test_claimRegistry_Release_pendingSkipsUnbind(t *testing.T) {
	registry := NewClaimRegistry()
	unbinder := &fakeUnbinder{registry: registry}
	registry.SetCollaborators(unbinder, &fakeMountChecker{mounted: map[string]bool{}})

	_ = registry.Submit(newTestClaim("claim-1", 1<<30))
	if err := registry.Release("claim-1"); err != nil {
		t.Fatalf("Release() unexpected error = %v", err)
	}
	if len(unbinder.unbound) != 0 {
		t.Errorf("Release() of a pending claim should not unbind, got %v", unbinder.unbound)
	}
	if got := registry.Pending(); len(got) != 0 {
		t.Errorf("Pending() after release = %v, want empty", got)
	}
}

func Test_claimRegistry_Release_reboundDuringUnbind(t *testing.T) {
	registry := NewClaimRegistry()
	unbinder := &fakeUnbinder{registry: registry}
	registry.SetCollaborators(unbinder, &fakeMountChecker{mounted: map[string]bool{}})

	_ = registry.Submit(newTestClaim("claim-1", 1<<30))
	_ = registry.MarkBound("claim-1", "vol-1")

	// a matching pass lands while the registry lock is dropped for the
	// unbind. Release has to notice the fresh binding and unbind again
	// instead of deleting a bound claim
	unbinder.afterUnbind = func(claimName string) {
		unbinder.afterUnbind = nil
		if err := registry.MarkBound(claimName, "vol-2"); err != nil {
			t.Fatalf("MarkBound() unexpected error = %v", err)
		}
	}
	if err := registry.Release("claim-1"); err != nil {
		t.Fatalf("Release() unexpected error = %v", err)
	}
	if len(unbinder.unbound) != 2 {
		t.Errorf("Release() unbound = %v, want two unbind calls", unbinder.unbound)
	}
	if _, err := registry.Get("claim-1"); err != ErrorClaimNotFound {
		t.Errorf("Get() error = %v, want ErrorClaimNotFound", err)
	}
}

func Test_claimRegistry_Release_mountedDuringUnbind(t *testing.T) {
	registry := NewClaimRegistry()
	unbinder := &fakeUnbinder{registry: registry}
	mounts := &fakeMountChecker{mounted: map[string]bool{}}
	registry.SetCollaborators(unbinder, mounts)

	_ = registry.Submit(newTestClaim("claim-1", 1<<30))
	_ = registry.MarkBound("claim-1", "vol-1")

	// a mount handle shows up in the unlocked window. The claim must
	// survive the release attempt instead of leaving the handle dangling
	unbinder.afterUnbind = func(claimName string) {
		mounts.mounted[claimName] = true
	}
	if err := registry.Release("claim-1"); err != ErrorClaimMounted {
		t.Fatalf("Release() error = %v, want ErrorClaimMounted", err)
	}
	if _, err := registry.Get("claim-1"); err != nil {
		t.Errorf("Get() unexpected error = %v, claim must survive", err)
	}
}

func Test_claimRegistry_MarkLost(t *testing.T) {
	registry := NewClaimRegistry()
	_ = registry.Submit(newTestClaim("claim-1", 1<<30))
	_ = registry.MarkBound("claim-1", "vol-1")

	if err := registry.MarkLost("claim-1"); err != nil {
		t.Fatalf("MarkLost() unexpected error = %v", err)
	}
	claim, _ := registry.Get("claim-1")
	if claim.Status.State != apisv1alpha1.ClaimStateLost {
		t.Errorf("Get() state = %v, want Lost", claim.Status.State)
	}
	if claim.Status.BoundVolume != "" {
		t.Errorf("Get() bound volume = %v, want empty", claim.Status.BoundVolume)
	}

	if err := registry.MarkLost("no-such"); err != ErrorClaimNotFound {
		t.Errorf("MarkLost() error = %v, want ErrorClaimNotFound", err)
	}
}
