package registry

import (
	"context"
	"testing"

	"github.com/Booklab/TimelineBundle/internal/locator"
	"github.com/Booklab/TimelineBundle/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedLocator struct{ name string }

func (namedLocator) Supports(string) bool { return false }

func (namedLocator) Locate(context.Context, string, []*timeline.Component) error { return nil }

func TestAttach_DeduplicatesTaggedAndConfigured(t *testing.T) {
	foo, bar, baz := &namedLocator{"foo"}, &namedLocator{"bar"}, &namedLocator{"baz"}
	r := New()
	r.RegisterTagged("baz.service", baz)
	r.RegisterTagged("foo.service", foo)
	r.Register("bar.service", bar)
	h := locator.NewHydrator(context.Background())

	err := r.Attach(context.Background(), h, []string{"foo.service", "bar.service"})

	require.NoError(t, err)
	assert.Equal(t, []locator.Locator{baz, foo, bar}, h.Locators())
}

func TestAttach_RepeatedConfiguredID(t *testing.T) {
	foo := &namedLocator{"foo"}
	r := New()
	r.Register("foo.service", foo)
	h := locator.NewHydrator(context.Background())

	require.NoError(t, r.Attach(context.Background(), h, []string{"foo.service", "foo.service"}))

	assert.Len(t, h.Locators(), 1)
}

func TestAttach_UnknownID(t *testing.T) {
	r := New()
	r.Register("foo.service", &namedLocator{"foo"})
	h := locator.NewHydrator(context.Background())

	err := r.Attach(context.Background(), h, []string{"foo.service", "missing.service"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locator 'missing.service' is configured but not registered")
	assert.Empty(t, h.Locators())
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := New()
	r.Register("foo.service", &namedLocator{"foo"})

	assert.PanicsWithValue(t, "locator with id 'foo.service' already registered", func() {
		r.RegisterTagged("foo.service", &namedLocator{"other"})
	})
}

func TestLookup(t *testing.T) {
	foo := &namedLocator{"foo"}
	r := New()
	r.Register("foo.service", foo)

	got, ok := r.Lookup("foo.service")
	assert.True(t, ok)
	assert.Same(t, foo, got)

	_, ok = r.Lookup("bar.service")
	assert.False(t, ok)
}
