package binder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

func Test_EventHistory_bounded(t *testing.T) {
	history := NewEventHistory(3)
	for i := 0; i < 5; i++ {
		history.Record(TransitionEvent{
			Claim: fmt.Sprintf("claim-%d", i),
			From:  apisv1alpha1.ClaimStatePending,
			To:    apisv1alpha1.ClaimStateBound,
		})
	}

	events := history.List()
	assert.Equal(t, 3, len(events))
	// the two oldest were evicted
	assert.Equal(t, "claim-2", events[0].Claim)
	assert.Equal(t, "claim-4", events[2].Claim)
}

func Test_EventHistory_listIsACopy(t *testing.T) {
	history := NewEventHistory(8)
	history.Record(TransitionEvent{Claim: "claim-1"})

	events := history.List()
	events[0].Claim = "mutated"

	assert.Equal(t, "claim-1", history.List()[0].Claim)
}
