package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructionFromType(t *testing.T) {
	typ, err := Compose(Descriptor{
		Name: "Config",
		Fields: []Field{
			{Name: "host", Value: "localhost"},
			{Name: "port", Value: 8080},
			{Name: "_secret", Value: "hidden"},
			{Name: "helper", Value: func() {}},
		},
	})
	require.NoError(t, err)

	obj := typ.New()
	require.NoError(t, Reconstruction{}.FromType(obj))

	assert.Equal(t, []string{"host", "port"}, obj.Fields().Keys(),
		"internal and callable fields are skipped")

	v, _ := obj.Fields().Get("host")
	assert.Equal(t, "localhost", v)
}

func TestReconstructionFromInstance(t *testing.T) {
	typ, err := Compose(Descriptor{
		Name: "Config",
		Fields: []Field{
			{Name: "host", Value: "localhost"},
			{Name: "port", Value: 8080},
		},
	})
	require.NoError(t, err)

	obj := typ.New(
		Field{Name: "port", Value: 9090},
		Field{Name: "alias", Value: "dev"},
	)
	obj.Fields().Clear()

	require.NoError(t, Reconstruction{}.FromInstance(obj))

	assert.Equal(t, []string{"alias", "host", "port"}, obj.Fields().Keys(),
		"merged fields apply in sorted name order")

	port, _ := obj.Fields().Get("port")
	assert.Equal(t, 9090, port, "instance fields win over type fields")
}

func TestReconstructionIdempotentWhileNonEmpty(t *testing.T) {
	typ, err := Compose(Descriptor{
		Name:   "Config",
		Fields: []Field{{Name: "host", Value: "localhost"}},
	})
	require.NoError(t, err)

	obj := typ.New(Field{Name: "custom", Value: true})

	require.NoError(t, Reconstruction{}.FromType(obj))
	assert.Equal(t, []string{"custom"}, obj.Fields().Keys(),
		"a non-empty store is left alone")

	require.NoError(t, Reconstruction{}.FromInstance(obj))
	assert.Equal(t, []string{"custom"}, obj.Fields().Keys())
}

func TestReconstructionRebuildDispatch(t *testing.T) {
	typ, err := Compose(Descriptor{
		Name:        "Config",
		Fields:      []Field{{Name: "host", Value: "localhost"}},
		RebuildFrom: RebuildFromInstance,
	})
	require.NoError(t, err)

	obj := typ.New(Field{Name: "alias", Value: "dev"})
	obj.Fields().Clear()

	// Empty source selects the type default, here the instance source.
	require.NoError(t, Reconstruction{}.Rebuild(obj, ""))
	assert.Equal(t, []string{"alias", "host"}, obj.Fields().Keys())

	err = Reconstruction{}.Rebuild(obj, "bogus")
	assert.ErrorIs(t, err, ErrRebuildSourceUnknown)
}

func TestReconstructionMissingStore(t *testing.T) {
	err := Reconstruction{}.FromType(bareHost{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreMissing)

	err = Reconstruction{}.FromInstance(bareHost{})
	assert.ErrorIs(t, err, ErrStoreMissing)
}

func TestReconstructionUntypedHost(t *testing.T) {
	h := &plainHost{store: NewStore()}

	// No type means no declared fields; the store stays empty.
	require.NoError(t, Reconstruction{}.FromType(h))
	assert.Zero(t, h.store.Len())
}
