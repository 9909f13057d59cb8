package api

import (
	"time"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/binder"
	"github.com/bindstor/bindstor/pkg/utils"
)

// RspFailBody is the body of a failed response
type RspFailBody struct {
	ErrCode int    `json:"errcode"`
	Desc    string `json:"description"`
}

// Volume is the API view of a pool volume
type Volume struct {
	Name string `json:"name"`

	// TotalCapacityBytes of the volume
	TotalCapacityBytes int64 `json:"totalCapacityBytes"`

	// Capacity in human readable form, e.g. 1GB
	Capacity string `json:"capacity"`

	AccessModes []apisv1alpha1.AccessMode `json:"accessModes"`

	StorageClass string `json:"storageClass,omitempty"`

	State apisv1alpha1.State `json:"state"`

	BoundClaim string `json:"boundClaim,omitempty"`
}

// VolumeList of the pool
type VolumeList struct {
	Volumes []*Volume `json:"volumes"`
}

// Claim is the API view of a registered claim
type Claim struct {
	Name string `json:"name"`

	RequiredCapacityBytes int64 `json:"requiredCapacityBytes"`

	RequiredCapacity string `json:"requiredCapacity"`

	AccessMode apisv1alpha1.AccessMode `json:"accessMode"`

	StorageClass string `json:"storageClass,omitempty"`

	State apisv1alpha1.State `json:"state"`

	BoundVolume string `json:"boundVolume,omitempty"`
}

// ClaimList of the registry
type ClaimList struct {
	Claims []*Claim `json:"claims"`
}

// Binding is the API view of a claim-volume pairing
type Binding struct {
	ClaimName  string    `json:"claimName"`
	VolumeName string    `json:"volumeName"`
	CreateTime time.Time `json:"createTime"`
}

// BindingList of the binder
type BindingList struct {
	Bindings []*Binding `json:"bindings"`
}

// Mount is the API view of a live mount handle
type Mount struct {
	ID         string `json:"id"`
	Workload   string `json:"workload"`
	ClaimName  string `json:"claimName"`
	MountPath  string `json:"mountPath"`
	VolumeName string `json:"volumeName"`
}

// MountList of the coordinator
type MountList struct {
	Mounts []*Mount `json:"mounts"`
}

// EventList is the recent claim state transitions, oldest first
type EventList struct {
	Events []binder.TransitionEvent `json:"events"`
}

// RegisterVolumeReqBody is the request body of a volume registration
type RegisterVolumeReqBody struct {
	Name       string                        `json:"name"`
	Descriptor apisv1alpha1.VolumeDescriptor `json:"descriptor"`
}

// SubmitClaimReqBody is the request body of a claim submission
type SubmitClaimReqBody struct {
	Name       string                       `json:"name"`
	Descriptor apisv1alpha1.ClaimDescriptor `json:"descriptor"`
}

// SubmitClaimRspBody reports the claim state right after submission.
// Pending is a legitimate answer, not a failure
type SubmitClaimRspBody struct {
	Name  string             `json:"name"`
	State apisv1alpha1.State `json:"state"`
}

func ToVolumeResource(vol *apisv1alpha1.Volume) *Volume {
	return &Volume{
		Name:               vol.Name,
		TotalCapacityBytes: vol.Spec.CapacityBytes,
		Capacity:           utils.ConvertBytesToStr(vol.Spec.CapacityBytes),
		AccessModes:        vol.Spec.AccessModes,
		StorageClass:       vol.Spec.StorageClass,
		State:              vol.Status.State,
		BoundClaim:         vol.Status.BoundClaim,
	}
}

func ToClaimResource(claim *apisv1alpha1.Claim) *Claim {
	return &Claim{
		Name:                  claim.Name,
		RequiredCapacityBytes: claim.Spec.RequiredCapacityBytes,
		RequiredCapacity:      utils.ConvertBytesToStr(claim.Spec.RequiredCapacityBytes),
		AccessMode:            claim.Spec.AccessMode,
		StorageClass:          claim.Spec.StorageClass,
		State:                 claim.Status.State,
		BoundVolume:           claim.Status.BoundVolume,
	}
}

func ToMountResource(mount *apisv1alpha1.Mount) *Mount {
	return &Mount{
		ID:         mount.ID,
		Workload:   mount.Request.Workload,
		ClaimName:  mount.Request.ClaimName,
		MountPath:  mount.Request.MountPath,
		VolumeName: mount.VolumeName,
	}
}
