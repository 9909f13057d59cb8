package storage

import (
	"testing"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

func newTestVolume(name string, capacity int64, class string, modes ...apisv1alpha1.AccessMode) *apisv1alpha1.Volume {
	if len(modes) == 0 {
		modes = []apisv1alpha1.AccessMode{apisv1alpha1.ReadWriteOnce}
	}
	return &apisv1alpha1.Volume{
		Name: name,
		Spec: apisv1alpha1.VolumeSpec{
			CapacityBytes: capacity,
			AccessModes:   modes,
			StorageClass:  class,
		},
	}
}

func Test_volumePool_Register(t *testing.T) {
	pool := NewVolumePool()

	if err := pool.Register(newTestVolume("vol-1", 1<<30, "")); err != nil {
		t.Fatalf("Register() unexpected error = %v", err)
	}
	if err := pool.Register(newTestVolume("vol-1", 2<<30, "")); err != ErrorVolumeExists {
		t.Errorf("Register() error = %v, want ErrorVolumeExists", err)
	}

	vol, err := pool.Get("vol-1")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if vol.Status.State != apisv1alpha1.VolumeStateUnbound {
		t.Errorf("Get() state = %v, want Unbound", vol.Status.State)
	}
	// the original capacity survives the duplicate registration
	if vol.Spec.CapacityBytes != 1<<30 {
		t.Errorf("Get() capacity = %v, want %v", vol.Spec.CapacityBytes, 1<<30)
	}

	if _, err := pool.Get("no-such"); err != ErrorVolumeNotFound {
		t.Errorf("Get() error = %v, want ErrorVolumeNotFound", err)
	}
}

func Test_volumePool_Find_firstFit(t *testing.T) {
	pool := NewVolumePool()
	// registered out of order on purpose
	for _, vol := range []*apisv1alpha1.Volume{
		newTestVolume("vol-big", 10<<30, ""),
		newTestVolume("vol-small", 1<<30, ""),
		newTestVolume("vol-mid", 5<<30, ""),
	} {
		if err := pool.Register(vol); err != nil {
			t.Fatalf("Register(%s) unexpected error = %v", vol.Name, err)
		}
	}

	it := pool.Find("", 1<<30, apisv1alpha1.ReadWriteOnce)
	var got []string
	for {
		vol, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, vol.Name)
	}
	want := []string{"vol-small", "vol-mid", "vol-big"}
	if len(got) != len(want) {
		t.Fatalf("Find() produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Find() order %v, want %v", got, want)
			break
		}
	}
}

func Test_volumePool_Find_filters(t *testing.T) {
	pool := NewVolumePool()
	_ = pool.Register(newTestVolume("vol-rwo", 1<<30, "fast"))
	_ = pool.Register(newTestVolume("vol-rwx", 1<<30, "slow", apisv1alpha1.ReadWriteMany))
	_ = pool.Register(newTestVolume("vol-tiny", 1<<20, "fast"))

	tests := []struct {
		name  string
		class string
		min   int64
		mode  apisv1alpha1.AccessMode
		want  []string
	}{
		{
			name: "capacity filter",
			min:  1 << 30,
			mode: apisv1alpha1.ReadWriteOnce,
			want: []string{"vol-rwo"},
		},
		{
			name:  "class filter",
			class: "slow",
			min:   1,
			mode:  apisv1alpha1.ReadWriteMany,
			want:  []string{"vol-rwx"},
		},
		{
			name: "mode filter",
			min:  1,
			mode: apisv1alpha1.ReadWriteMany,
			want: []string{"vol-rwx"},
		},
		{
			name:  "empty class matches any",
			class: "",
			min:   1,
			mode:  apisv1alpha1.ReadWriteOnce,
			want:  []string{"vol-tiny", "vol-rwo"},
		},
		{
			name: "nothing fits",
			min:  100 << 30,
			mode: apisv1alpha1.ReadWriteOnce,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := pool.Find(tt.class, tt.min, tt.mode)
			var got []string
			for {
				vol, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, vol.Name)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Find() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Find() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func Test_volumePool_Find_skipsReservedLazily(t *testing.T) {
	pool := NewVolumePool()
	_ = pool.Register(newTestVolume("vol-1", 1<<30, ""))
	_ = pool.Register(newTestVolume("vol-2", 2<<30, ""))

	it := pool.Find("", 1, apisv1alpha1.ReadWriteOnce)
	// vol-1 gets reserved after the snapshot but before iteration
	if err := pool.Reserve("vol-1", "claim-a"); err != nil {
		t.Fatalf("Reserve() unexpected error = %v", err)
	}

	vol, ok := it.Next()
	if !ok {
		t.Fatal("Next() expected a volume")
	}
	if vol.Name != "vol-2" {
		t.Errorf("Next() = %v, want vol-2", vol.Name)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() expected exhaustion")
	}
}

func Test_volumePool_ReserveUnreserve(t *testing.T) {
	pool := NewVolumePool()
	_ = pool.Register(newTestVolume("vol-1", 1<<30, ""))

	if err := pool.Reserve("vol-1", "claim-a"); err != nil {
		t.Fatalf("Reserve() unexpected error = %v", err)
	}
	if err := pool.Reserve("vol-1", "claim-b"); err != ErrorVolumeBound {
		t.Errorf("Reserve() error = %v, want ErrorVolumeBound", err)
	}
	if err := pool.Reserve("no-such", "claim-a"); err != ErrorVolumeNotFound {
		t.Errorf("Reserve() error = %v, want ErrorVolumeNotFound", err)
	}

	vol, _ := pool.Get("vol-1")
	if vol.Status.State != apisv1alpha1.VolumeStateBound || vol.Status.BoundClaim != "claim-a" {
		t.Errorf("Get() after reserve = %+v", vol.Status)
	}

	if err := pool.Unreserve("vol-1"); err != nil {
		t.Fatalf("Unreserve() unexpected error = %v", err)
	}
	vol, _ = pool.Get("vol-1")
	if vol.Status.State != apisv1alpha1.VolumeStateUnbound || vol.Status.BoundClaim != "" {
		t.Errorf("Get() after unreserve = %+v", vol.Status)
	}
}

func Test_volumePool_Release(t *testing.T) {
	pool := NewVolumePool()
	_ = pool.Register(newTestVolume("vol-1", 1<<30, ""))
	_ = pool.Reserve("vol-1", "claim-a")

	if err := pool.Release("vol-1"); err != ErrorVolumeBound {
		t.Errorf("Release() error = %v, want ErrorVolumeBound", err)
	}

	_ = pool.Unreserve("vol-1")
	if err := pool.Release("vol-1"); err != nil {
		t.Errorf("Release() unexpected error = %v", err)
	}
	if err := pool.Release("vol-1"); err != ErrorVolumeNotFound {
		t.Errorf("Release() error = %v, want ErrorVolumeNotFound", err)
	}
}

func Test_volumePool_Destroy(t *testing.T) {
	pool := NewVolumePool()
	_ = pool.Register(newTestVolume("vol-1", 1<<30, ""))
	_ = pool.Register(newTestVolume("vol-2", 1<<30, ""))
	_ = pool.Reserve("vol-1", "claim-a")

	orphan, err := pool.Destroy("vol-1")
	if err != nil {
		t.Fatalf("Destroy() unexpected error = %v", err)
	}
	if orphan != "claim-a" {
		t.Errorf("Destroy() orphan = %v, want claim-a", orphan)
	}

	orphan, err = pool.Destroy("vol-2")
	if err != nil {
		t.Fatalf("Destroy() unexpected error = %v", err)
	}
	if orphan != "" {
		t.Errorf("Destroy() orphan = %v, want empty", orphan)
	}

	if _, err := pool.Destroy("vol-1"); err != ErrorVolumeNotFound {
		t.Errorf("Destroy() error = %v, want ErrorVolumeNotFound", err)
	}
}
