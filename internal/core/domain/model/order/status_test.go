package order_test

import (
	"fmt"
	"testing"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Cooking))
		assert.Equal(t, 2, int(order.AwaitingPayment))
		assert.Equal(t, 3, int(order.Served))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Cooking,
			order.AwaitingPayment,
			order.Served,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return stage names", func(t *testing.T) {
		assert.Equal(t, "Cooking", order.Cooking.String())
		assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
		assert.Equal(t, "Served", order.Served.String())
		assert.Equal(t, "Unknown", order.Unknown.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestPipeline_Shape(t *testing.T) {
	t.Run("stages are ordered cook-first", func(t *testing.T) {
		stages := order.Pipeline()

		require.Len(t, stages, 3)
		assert.Equal(t, order.Cooking, stages[0].Status)
		assert.Equal(t, order.AwaitingPayment, stages[1].Status)
		assert.Equal(t, order.Served, stages[2].Status)
	})

	t.Run("each non-first stage has exactly one predecessor and command", func(t *testing.T) {
		stages := order.Pipeline()

		seenCommands := map[string]bool{}
		for i, stage := range stages {
			if i == 0 {
				assert.Equal(t, order.Unknown, stage.Predecessor)
				assert.Empty(t, stage.Command)
				continue
			}

			assert.Equal(t, stages[i-1].Status, stage.Predecessor)
			assert.NotEmpty(t, stage.Command)
			assert.NotEmpty(t, stage.Role)
			assert.False(t, seenCommands[stage.Command], "command %q must be unique", stage.Command)
			seenCommands[stage.Command] = true
		}
	})

	t.Run("designated stages are configured", func(t *testing.T) {
		assert.Equal(t, order.Cooking, order.FirstStage())
		assert.Equal(t, order.AwaitingPayment, order.ReadyStage())
		assert.Equal(t, order.Served, order.PaidStage())
	})

	t.Run("audiences come from the stage table", func(t *testing.T) {
		assert.Equal(t, "kitchen", order.Cooking.Audience())
		assert.Equal(t, "all", order.AwaitingPayment.Audience())
		assert.Equal(t, "all", order.Served.Audience())
		assert.Empty(t, order.Unknown.Audience())
	})

	t.Run("entry events come from the stage table", func(t *testing.T) {
		assert.Equal(t, "new_kitchen_order", order.Cooking.EntryEvent())
		assert.Equal(t, "status_updated", order.AwaitingPayment.EntryEvent())
		assert.Equal(t, "status_updated", order.Served.EntryEvent())
		assert.Empty(t, order.Unknown.EntryEvent())
	})
}

func TestStageForCommand(t *testing.T) {
	t.Run("resolves known commands", func(t *testing.T) {
		target, ok := order.StageForCommand("cooking_complete")
		require.True(t, ok)
		assert.Equal(t, order.AwaitingPayment, target)

		target, ok = order.StageForCommand("confirm_payment")
		require.True(t, ok)
		assert.Equal(t, order.Served, target)
	})

	t.Run("rejects unknown and empty commands", func(t *testing.T) {
		_, ok := order.StageForCommand("teleport")
		assert.False(t, ok)

		_, ok = order.StageForCommand("")
		assert.False(t, ok)
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	t.Run("allows exactly the configured transitions", func(t *testing.T) {
		next, err := order.Cooking.AdvanceTo(order.AwaitingPayment)
		require.NoError(t, err)
		assert.Equal(t, order.AwaitingPayment, next)

		next, err = order.AwaitingPayment.AdvanceTo(order.Served)
		require.NoError(t, err)
		assert.Equal(t, order.Served, next)
	})

	t.Run("rejects skipping a stage", func(t *testing.T) {
		_, err := order.Cooking.AdvanceTo(order.Served)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects reverting", func(t *testing.T) {
		_, err := order.Served.AdvanceTo(order.AwaitingPayment)

		require.Error(t, err)
	})

	t.Run("rejects repeating the current stage", func(t *testing.T) {
		_, err := order.AwaitingPayment.AdvanceTo(order.AwaitingPayment)

		require.Error(t, err)
	})

	t.Run("rejects the first stage as target", func(t *testing.T) {
		_, err := order.Unknown.AdvanceTo(order.Cooking)

		require.Error(t, err)
	})

	t.Run("rejects invalid targets", func(t *testing.T) {
		_, err := order.Cooking.AdvanceTo(order.Status(42))

		require.Error(t, err)
	})
}

func TestStatus_Flags(t *testing.T) {
	t.Run("ready flag marks only the call-out stage", func(t *testing.T) {
		assert.False(t, order.Cooking.IsReady())
		assert.True(t, order.AwaitingPayment.IsReady())
		assert.False(t, order.Served.IsReady())
	})

	t.Run("paid flag marks only the terminal stage", func(t *testing.T) {
		assert.False(t, order.Cooking.IsPaid())
		assert.False(t, order.AwaitingPayment.IsPaid())
		assert.True(t, order.Served.IsPaid())
	})
}
