package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/guemper-znacht/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkProcessed(t *testing.T) {
	t.Run("first mark wins, second conflicts", func(t *testing.T) {
		ctx := context.Background()
		intentID := "pi_mark_conflict"

		err := db.MarkProcessed(ctx, intentID, 3)
		require.NoError(t, err)

		err = db.MarkProcessed(ctx, intentID, 3)
		require.Error(t, err)

		var regErr *registration.Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, registration.REASON_ALREADY_PROCESSED, regErr.Reason)
	})

	t.Run("different intents do not conflict", func(t *testing.T) {
		ctx := context.Background()

		assert.NoError(t, db.MarkProcessed(ctx, "pi_first", 1))
		assert.NoError(t, db.MarkProcessed(ctx, "pi_second", 2))
	})
}

func TestUnmarkProcessed(t *testing.T) {
	t.Run("unmark allows a later mark to win again", func(t *testing.T) {
		ctx := context.Background()
		intentID := "pi_unmark"

		require.NoError(t, db.MarkProcessed(ctx, intentID, 2))
		require.NoError(t, db.UnmarkProcessed(ctx, intentID))

		assert.NoError(t, db.MarkProcessed(ctx, intentID, 2))
	})

	t.Run("unmarking an absent marker is not an error", func(t *testing.T) {
		assert.NoError(t, db.UnmarkProcessed(context.Background(), "pi_never_marked"))
	})
}

func TestGetProcessed(t *testing.T) {
	t.Run("returns the recorded row count", func(t *testing.T) {
		ctx := context.Background()
		intentID := "pi_get"

		require.NoError(t, db.MarkProcessed(ctx, intentID, 4))

		rows, exists, err := db.GetProcessed(ctx, intentID)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 4, rows)
	})

	t.Run("absent marker reports not exists", func(t *testing.T) {
		rows, exists, err := db.GetProcessed(context.Background(), "pi_absent")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, 0, rows)
	})
}
