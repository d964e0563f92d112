package services_test

import (
	"testing"
	"time"

	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/core/domain/services"
	"ordercompletion/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

func mustOrder(t *testing.T, id int64, orderDate time.Time, status order.Status, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, orderDate, status, lines)
	require.NoError(t, err)
	return o
}

func mustLine(t *testing.T, productID int64, ordered int, delivered *int) order.Line {
	t.Helper()
	line, err := order.NewLine(productID, ordered, delivered)
	require.NoError(t, err)
	return line
}

func TestFullyDeliveredRequirement(t *testing.T) {
	orderDate := fixedNow.AddDate(-1, 0, 0)

	t.Run("empty_line_set_is_ineligible", func(t *testing.T) {
		req := services.NewFullyDeliveredRequirement()
		o := mustOrder(t, 1, orderDate, order.Submitted)

		assert.False(t, req.Fulfils(o))
		assert.Equal(t, "no order lines were found in that order", req.FailureReason())
	})

	t.Run("all_lines_delivered_is_eligible", func(t *testing.T) {
		req := services.NewFullyDeliveredRequirement()
		o := mustOrder(t, 2, orderDate, order.Submitted,
			mustLine(t, 1, 2, intPtr(2)),
			mustLine(t, 2, 5, intPtr(5)),
		)

		assert.True(t, req.Fulfils(o))
	})

	t.Run("undelivered_line_is_ineligible", func(t *testing.T) {
		req := services.NewFullyDeliveredRequirement()
		o := mustOrder(t, 3, orderDate, order.Submitted,
			mustLine(t, 1, 2, intPtr(2)),
			mustLine(t, 2, 5, nil),
		)

		assert.False(t, req.Fulfils(o))
		assert.Equal(t, "all order lines must be fully delivered", req.FailureReason())
	})

	t.Run("partially_delivered_line_is_ineligible", func(t *testing.T) {
		req := services.NewFullyDeliveredRequirement()
		o := mustOrder(t, 4, orderDate, order.Submitted,
			mustLine(t, 1, 5, intPtr(3)),
		)

		assert.False(t, req.Fulfils(o))
	})
}

func TestOrderAgeRequirement(t *testing.T) {
	req := services.NewOrderAgeRequirement(clock.NewFixedClock(fixedNow))

	t.Run("exactly_six_months_old_is_eligible", func(t *testing.T) {
		o := mustOrder(t, 1, fixedNow.AddDate(0, -6, 0), order.Submitted)

		assert.True(t, req.Fulfils(o))
	})

	t.Run("one_second_younger_than_six_months_is_ineligible", func(t *testing.T) {
		o := mustOrder(t, 2, fixedNow.AddDate(0, -6, 0).Add(time.Second), order.Submitted)

		assert.False(t, req.Fulfils(o))
		assert.Equal(t, "order must be at least 6 months old", req.FailureReason())
	})

	t.Run("one_year_old_is_eligible", func(t *testing.T) {
		o := mustOrder(t, 3, fixedNow.AddDate(-1, 0, 0), order.Submitted)

		assert.True(t, req.Fulfils(o))
	})
}

func TestNotFinishedRequirement(t *testing.T) {
	req := services.NewNotFinishedRequirement()
	orderDate := fixedNow.AddDate(-1, 0, 0)

	t.Run("submitted_order_is_eligible", func(t *testing.T) {
		o := mustOrder(t, 1, orderDate, order.Submitted)

		assert.True(t, req.Fulfils(o))
	})

	t.Run("finished_order_is_ineligible", func(t *testing.T) {
		o := mustOrder(t, 2, orderDate, order.Finished)

		assert.False(t, req.Fulfils(o))
		assert.Equal(t, "order has already been marked as finished", req.FailureReason())
	})
}

func TestRequirementEngine_Evaluate(t *testing.T) {
	orderDate := fixedNow.AddDate(-1, 0, 0)

	fullEngine := func() services.RequirementEngine {
		return services.NewRequirementEngine(nil,
			services.NewFullyDeliveredRequirement(),
			services.NewOrderAgeRequirement(clock.NewFixedClock(fixedNow)),
			services.NewNotFinishedRequirement(),
		)
	}

	t.Run("all_rules_pass", func(t *testing.T) {
		o := mustOrder(t, 1, orderDate, order.Submitted, mustLine(t, 1, 2, intPtr(2)))

		eligible, reason := fullEngine().Evaluate(o)

		assert.True(t, eligible)
		assert.Empty(t, reason)
	})

	t.Run("short_circuits_at_first_failing_rule", func(t *testing.T) {
		// Fails full delivery and age; the reported reason must come from the
		// first rule in the configured order.
		o := mustOrder(t, 2, fixedNow, order.Submitted)

		eligible, reason := fullEngine().Evaluate(o)

		assert.False(t, eligible)
		assert.Equal(t, "no order lines were found in that order", reason)
	})

	t.Run("reports_later_rule_when_earlier_ones_pass", func(t *testing.T) {
		o := mustOrder(t, 3, fixedNow, order.Submitted, mustLine(t, 1, 2, intPtr(2)))

		eligible, reason := fullEngine().Evaluate(o)

		assert.False(t, eligible)
		assert.Equal(t, "order must be at least 6 months old", reason)
	})

	t.Run("zero_rules_is_vacuously_eligible", func(t *testing.T) {
		engine := services.NewRequirementEngine(nil)
		o := mustOrder(t, 4, fixedNow, order.Finished)

		eligible, reason := engine.Evaluate(o)

		assert.True(t, eligible)
		assert.Empty(t, reason)
	})
}
