package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type renderSettings struct {
	Size   int
	Stroke int
}

func (s *renderSettings) SetSize(v int) error {
	if v <= 0 {
		return errors.New("size must be positive")
	}
	s.Size = v

	return nil
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		settings := &renderSettings{}
		err := Apply(settings,
			New(func(s *renderSettings) error { return s.SetSize(100) }),
			NoError(func(s *renderSettings) { s.Stroke = 4 }),
		)
		require.NoError(t, err)
		require.Equal(t, 100, settings.Size)
		require.Equal(t, 4, settings.Stroke)
	})

	t.Run("stops at the first failing option", func(t *testing.T) {
		settings := &renderSettings{}
		err := Apply(settings,
			New(func(s *renderSettings) error { return s.SetSize(-1) }),
			NoError(func(s *renderSettings) { s.Stroke = 4 }),
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "size must be positive")
		require.Zero(t, settings.Stroke)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		settings := &renderSettings{}
		require.NoError(t, Apply(settings))
	})
}
