package order_test

import (
	"testing"

	"ordercompletion/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{name: "submitted_is_valid", status: order.Submitted, wantErr: false},
		{name: "finished_is_valid", status: order.Finished, wantErr: false},
		{name: "unknown_is_invalid", status: order.Unknown, wantErr: true},
		{name: "out_of_range_is_invalid", status: order.Status(99), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Submitted", order.Submitted.String())
	assert.Equal(t, "Finished", order.Finished.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Complete(t *testing.T) {
	t.Run("submitted_transitions_to_finished", func(t *testing.T) {
		newStatus, err := order.Submitted.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Finished, newStatus)
	})

	t.Run("finished_cannot_complete_again", func(t *testing.T) {
		_, err := order.Finished.Complete()

		require.Error(t, err)
	})

	t.Run("unknown_cannot_complete", func(t *testing.T) {
		_, err := order.Unknown.Complete()

		require.Error(t, err)
	})
}
