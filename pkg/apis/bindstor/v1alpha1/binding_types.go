package v1alpha1

import "time"

// Binding is the exclusive pairing of one claim to one volume. The relation
// is injective in both directions: a claim appears in at most one binding,
// and so does a volume
type Binding struct {
	ClaimName  string `json:"claimName"`
	VolumeName string `json:"volumeName"`

	CreateTime time.Time `json:"createTime,omitempty"`
}
