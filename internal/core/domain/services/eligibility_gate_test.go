package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEligibilityGate_Evaluate(t *testing.T) {
	gate := services.NewEligibilityGate()

	testCases := []struct {
		name     string
		input    services.EligibilityInput
		expected services.GateState
		reason   error
	}{
		{
			name:     "ready",
			input:    services.EligibilityInput{Status: order.Activated, OfferCount: 2, HasSelection: true},
			expected: services.ReadyToLaunch,
		},
		{
			name:     "draft order",
			input:    services.EligibilityInput{Status: order.Draft, OfferCount: 2, HasSelection: true},
			expected: services.BlockedOrderNotActivated,
			reason:   services.ErrOrderNotActivated,
		},
		{
			name:     "platform-defined status",
			input:    services.EligibilityInput{Status: "Closed", OfferCount: 2, HasSelection: true},
			expected: services.BlockedOrderNotActivated,
			reason:   services.ErrOrderNotActivated,
		},
		{
			name:     "no offers",
			input:    services.EligibilityInput{Status: order.Activated},
			expected: services.BlockedNoCarriersForDestination,
			reason:   services.ErrNoCarriersForDestination,
		},
		{
			name:     "no selection",
			input:    services.EligibilityInput{Status: order.Activated, OfferCount: 1},
			expected: services.AwaitingSelection,
			reason:   services.ErrCarrierNotSelected,
		},
		{
			name:     "in flight",
			input:    services.EligibilityInput{Status: order.Activated, OfferCount: 1, HasSelection: true, InFlight: true},
			expected: services.LaunchInProgress,
			reason:   services.ErrLaunchInProgress,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := gate.Evaluate(tc.input)

			assert.Equal(t, tc.expected, got.State)
			if tc.reason == nil {
				assert.True(t, got.MayLaunch())
				assert.Empty(t, got.Reason())
				assert.NoError(t, got.Err())
				return
			}
			assert.False(t, got.MayLaunch())
			assert.Equal(t, tc.expected.String(), got.Reason())
			require.ErrorIs(t, got.Err(), tc.reason)
		})
	}
}

func TestEligibilityGate_Properties(t *testing.T) {
	gate := services.NewEligibilityGate()
	genInput := func(rt *rapid.T) services.EligibilityInput {
		return services.EligibilityInput{
			Status:       rapid.SampledFrom([]order.Status{order.Draft, order.Activated, "Closed"}).Draw(rt, "status"),
			OfferCount:   rapid.IntRange(0, 3).Draw(rt, "offers"),
			HasSelection: rapid.Bool().Draw(rt, "selection"),
			InFlight:     rapid.Bool().Draw(rt, "inFlight"),
		}
	}
	rule := func(in services.EligibilityInput) bool {
		return in.Status == order.Activated && in.OfferCount > 0 && in.HasSelection && !in.InFlight
	}

	t.Run("ready iff all four conditions hold", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			in := genInput(rt)

			got := gate.Evaluate(in)
			if got.MayLaunch() != rule(in) {
				rt.Fatalf("input %+v: state %s", in, got.State)
			}
			if !got.MayLaunch() && got.Err() == nil {
				rt.Fatalf("refusal without reason for %+v", in)
			}
		})
	})

	t.Run("flipping one input from ready blocks launch", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			in := services.EligibilityInput{Status: order.Activated, OfferCount: 1, HasSelection: true}
			switch rapid.IntRange(0, 3).Draw(rt, "flip") {
			case 0:
				in.Status = order.Draft
			case 1:
				in.OfferCount = 0
			case 2:
				in.HasSelection = false
			case 3:
				in.InFlight = true
			}

			if gate.Evaluate(in).MayLaunch() {
				rt.Fatalf("launch allowed for %+v", in)
			}
		})
	})
}
