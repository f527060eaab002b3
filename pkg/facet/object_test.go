package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyedFlow(t *testing.T) {
	typ, err := BaseType("Person")
	require.NoError(t, err)
	obj := typ.New()

	require.NoError(t, obj.Set("name", "Alice"))
	require.NoError(t, obj.Set("age", 30))

	v, err := obj.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)

	v, err = obj.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, obj.Delete("age"))
	require.NoError(t, obj.Delete("age"))

	v, err = obj.Get("age")
	require.NoError(t, err)
	assert.Nil(t, v, "deleted key reads as nil")

	keys, err := obj.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, keys)

	values, err := obj.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice"}, values)

	items, err := obj.Items()
	require.NoError(t, err)
	assert.Equal(t, []Item{{Key: "name", Value: "Alice"}}, items)
}

func TestObjectAttrFlow(t *testing.T) {
	typ, err := Compose(Descriptor{Name: "Person", Intent: Intent{Attr: true}})
	require.NoError(t, err)
	obj := typ.New()

	require.NoError(t, obj.SetAttr("name", "Bob"))

	v, err := obj.Attr("name")
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)

	v, err = obj.Attr("missing")
	require.NoError(t, err, "attribute reads never fail once composed")
	assert.Nil(t, v)

	require.NoError(t, obj.DelAttr("name"))
	require.NoError(t, obj.DelAttr("name"))
}

func TestObjectIterate(t *testing.T) {
	typ, err := Compose(Descriptor{Name: "Bag", Intent: Intent{Item: true, Iter: true}})
	require.NoError(t, err)
	obj := typ.New(Field{Name: "a", Value: 1}, Field{Name: "b", Value: 2})

	seq, err := obj.Iterate()
	require.NoError(t, err)

	require.NoError(t, obj.Set("c", 3))

	got := collect(seq)
	assert.Equal(t, []Item{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, got,
		"the sequence snapshots the store at Iterate time")
}

func TestObjectGating(t *testing.T) {
	typ, err := Compose(Descriptor{Name: "AttrOnly", Intent: Intent{Attr: true}})
	require.NoError(t, err)
	obj := typ.New()

	tests := []struct {
		name string
		op   func() error
	}{
		{"get", func() error { _, err := obj.Get("k"); return err }},
		{"set", func() error { return obj.Set("k", 1) }},
		{"delete", func() error { return obj.Delete("k") }},
		{"keys", func() error { _, err := obj.Keys(); return err }},
		{"values", func() error { _, err := obj.Values(); return err }},
		{"items", func() error { _, err := obj.Items(); return err }},
		{"iterate", func() error { _, err := obj.Iterate(); return err }},
		{"rebuild", func() error { return obj.Rebuild("") }},
		{"repr", func() error { _, err := obj.Repr(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), ErrNotComposed)
		})
	}
}

func TestObjectAttrGatedOff(t *testing.T) {
	typ, err := Compose(Descriptor{Name: "ItemOnly", Intent: Intent{Item: true}})
	require.NoError(t, err)
	obj := typ.New()

	_, err = obj.Attr("k")
	assert.ErrorIs(t, err, ErrNotComposed)
	assert.ErrorIs(t, obj.SetAttr("k", 1), ErrNotComposed)
	assert.ErrorIs(t, obj.DelAttr("k"), ErrNotComposed)
}

func TestObjectCombinedCapabilityAnswersKeyedOps(t *testing.T) {
	// Dispatch is by behavior: GetSetDel answers get, set, and delete,
	// but not the listing operations it does not implement.
	typ, err := Compose(Descriptor{Name: "Combined", Bases: []Capability{GetSetDel{}}})
	require.NoError(t, err)
	obj := typ.New()

	require.NoError(t, obj.Set("k", 1))
	v, err := obj.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, obj.Delete("k"))

	_, err = obj.Keys()
	assert.ErrorIs(t, err, ErrNotComposed)
}

func TestObjectZeroValue(t *testing.T) {
	var obj Object

	_, err := obj.Get("k")
	assert.ErrorIs(t, err, ErrNotComposed)
	assert.Nil(t, obj.Fields())
	assert.Nil(t, obj.Type())
}

func TestObjectMissingStoreSurfacesAccessError(t *testing.T) {
	typ, err := Compose(Descriptor{Name: "Broken", Intent: Intent{Item: true}})
	require.NoError(t, err)

	obj := &Object{typ: typ}
	_, err = obj.Get("k")
	assert.ErrorIs(t, err, ErrStoreMissing)
}

func TestObjectString(t *testing.T) {
	typ, err := BaseType("Person")
	require.NoError(t, err)
	obj := typ.New(Field{Name: "name", Value: "Ada"})
	assert.Equal(t, "Person(name='Ada')", obj.String())

	bare, err := Compose(Descriptor{Name: "Silent", Intent: Intent{Item: true}})
	require.NoError(t, err)
	assert.Equal(t, "<Silent>", bare.New().String())

	var zero Object
	assert.Equal(t, "<Object>", zero.String())
}

func TestObjectInstanceFieldsCopied(t *testing.T) {
	typ, err := BaseType("Person")
	require.NoError(t, err)
	obj := typ.New(Field{Name: "name", Value: "Ada"})

	obj.InstanceFields()[0] = Field{Name: "tampered"}
	assert.Equal(t, "name", obj.InstanceFields()[0].Name)
}
