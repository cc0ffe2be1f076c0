package transform_test

import (
	"testing"

	. "github.com/noctarius/pgloader/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestResolveBuiltin(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	fn, err := registry.Resolve("zero_dates_to_null")
	require.NoError(t, err)
	require.NotNil(t, fn)
}

func TestResolveUnknown(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, err := registry.Resolve("reticulate_splines")
	require.Error(t, err)

	var notFound *TransformNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "reticulate_splines", notFound.Name)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("upcase", func(value *string) (*string, error) {
		return value, nil
	})

	fn, err := registry.Resolve("upcase")
	require.NoError(t, err)
	require.NotNil(t, fn)
	require.Contains(t, registry.Names(), "upcase")
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := NewRegistry().Names()
	require.NotEmpty(t, names)
	require.IsIncreasing(t, names)
}
