//go:build unit

package comment_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"itemshare/internal/domain/comment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid comment", func(t *testing.T) {
		c, err := comment.New(uuid.New(), uuid.New(), "great drill", now)
		require.NoError(t, err)
		assert.Equal(t, "great drill", c.Text())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("text validation", func(t *testing.T) {
		cases := []struct {
			name  string
			text  string
			errIs error
		}{
			{name: "max length OK", text: strings.Repeat("a", comment.MaxTextLength)},
			{name: "over max length NG", text: strings.Repeat("a", comment.MaxTextLength+1), errIs: comment.ErrTextTooLong},
			{name: "multibyte at max length OK", text: strings.Repeat("ё", comment.MaxTextLength)},
			{name: "multibyte over max length NG", text: strings.Repeat("ё", comment.MaxTextLength+1), errIs: comment.ErrTextTooLong},
			{name: "empty NG", text: "", errIs: comment.ErrEmptyText},
			{name: "whitespace only NG", text: "   \t\n", errIs: comment.ErrEmptyText},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := comment.New(uuid.New(), uuid.New(), tc.text, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("text is trimmed", func(t *testing.T) {
		c, err := comment.New(uuid.New(), uuid.New(), "  nice  ", now)
		require.NoError(t, err)
		assert.Equal(t, "nice", c.Text())
	})
}

type stubHistory struct {
	finished bool
	err      error
}

func (s *stubHistory) HasFinishedBooking(_ context.Context, _, _ uuid.UUID, _ time.Time) (bool, error) {
	return s.finished, s.err
}

func TestEligibilityGate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("finished booking grants eligibility", func(t *testing.T) {
		gate := comment.NewEligibilityGate(&stubHistory{finished: true})
		ok, err := gate.MayComment(context.Background(), uuid.New(), uuid.New(), now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no finished booking denies", func(t *testing.T) {
		gate := comment.NewEligibilityGate(&stubHistory{finished: false})
		ok, err := gate.MayComment(context.Background(), uuid.New(), uuid.New(), now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("history failure propagates", func(t *testing.T) {
		wantErr := errors.New("boom")
		gate := comment.NewEligibilityGate(&stubHistory{err: wantErr})
		_, err := gate.MayComment(context.Background(), uuid.New(), uuid.New(), now)
		assert.ErrorIs(t, err, wantErr)
	})
}
