package mount

import (
	"testing"

	"github.com/bindstor/bindstor/pkg/storage"
)

type fakeResolver struct {
	volumes map[string]string
}

func (f *fakeResolver) ClaimBoundVolume(claimName string) (string, error) {
	vol, exists := f.volumes[claimName]
	if !exists {
		return "", storage.ErrorClaimNotBound
	}
	return vol, nil
}

func newTestCoordinator() (Coordinator, *fakeResolver) {
	resolver := &fakeResolver{volumes: map[string]string{"data-claim": "vol-1"}}
	return NewCoordinator(resolver), resolver
}

func Test_coordinator_RequestMount(t *testing.T) {
	c, _ := newTestCoordinator()

	handle, err := c.RequestMount("web", "data-claim", "/var/lib/data")
	if err != nil {
		t.Fatalf("RequestMount() unexpected error = %v", err)
	}
	if handle.ID == "" {
		t.Error("RequestMount() issued an empty handle ID")
	}
	if handle.VolumeName != "vol-1" {
		t.Errorf("RequestMount() volume = %v, want vol-1", handle.VolumeName)
	}

	// same triple, same handle
	again, err := c.RequestMount("web", "data-claim", "/var/lib/data")
	if err != nil {
		t.Fatalf("RequestMount() unexpected error = %v", err)
	}
	if again.ID != handle.ID {
		t.Errorf("RequestMount() repeated = %v, want %v", again.ID, handle.ID)
	}
	if got := len(c.List()); got != 1 {
		t.Errorf("List() = %d handles, want 1", got)
	}

	// a different path is a different mount
	other, err := c.RequestMount("web", "data-claim", "/var/log")
	if err != nil {
		t.Fatalf("RequestMount() unexpected error = %v", err)
	}
	if other.ID == handle.ID {
		t.Error("RequestMount() reused a handle across paths")
	}
	if got := len(c.List()); got != 2 {
		t.Errorf("List() = %d handles, want 2", got)
	}
}

func Test_coordinator_RequestMount_unboundClaim(t *testing.T) {
	c, _ := newTestCoordinator()

	if _, err := c.RequestMount("web", "no-such-claim", "/data"); err != storage.ErrorClaimNotBound {
		t.Errorf("RequestMount() error = %v, want ErrorClaimNotBound", err)
	}
	if got := len(c.List()); got != 0 {
		t.Errorf("List() = %d handles, want 0", got)
	}
}

func Test_coordinator_ReleaseMount(t *testing.T) {
	c, _ := newTestCoordinator()
	handle, _ := c.RequestMount("web", "data-claim", "/data")
	second, _ := c.RequestMount("web", "data-claim", "/logs")

	if !c.IsClaimMounted("data-claim") {
		t.Fatal("IsClaimMounted() = false, want true")
	}

	if err := c.ReleaseMount(handle.ID); err != nil {
		t.Fatalf("ReleaseMount() unexpected error = %v", err)
	}
	// one handle still references the claim
	if !c.IsClaimMounted("data-claim") {
		t.Error("IsClaimMounted() = false while a handle remains")
	}

	if err := c.ReleaseMount(second.ID); err != nil {
		t.Fatalf("ReleaseMount() unexpected error = %v", err)
	}
	if c.IsClaimMounted("data-claim") {
		t.Error("IsClaimMounted() = true after the last release")
	}

	// releasing again is a no-op
	if err := c.ReleaseMount(handle.ID); err != nil {
		t.Errorf("ReleaseMount() repeated = %v, want nil", err)
	}

	// the triple can be mounted anew with a fresh handle
	fresh, err := c.RequestMount("web", "data-claim", "/data")
	if err != nil {
		t.Fatalf("RequestMount() unexpected error = %v", err)
	}
	if fresh.ID == handle.ID {
		t.Error("RequestMount() reused a released handle ID")
	}
}
