package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPropertyValueKinds(t *testing.T) {
	text := StringValue("25")
	number := IntegerValue(25)

	assert.False(t, text.Equal(number))
	assert.True(t, number.Equal(IntegerValue(25)))
	assert.False(t, number.Equal(IntegerValue(26)))

	s, ok := text.Str()
	assert.True(t, ok)
	assert.Equal(t, "25", s)
	_, ok = text.Int()
	assert.False(t, ok)

	n, ok := number.Int()
	assert.True(t, ok)
	assert.Equal(t, 25, n)
	_, ok = number.Str()
	assert.False(t, ok)

	assert.Equal(t, "25", text.Any())
	assert.Equal(t, 25, number.Any())
	assert.Equal(t, "25", number.String())
	assert.Equal(t, "", StringValue("").String())
}

func TestPropertiesCloneAndNames(t *testing.T) {
	var empty Properties
	clone := empty.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)

	props := Properties{"b": StringValue("2"), "a": IntegerValue(1)}
	clone = props.Clone()
	clone["c"] = StringValue("3")
	assert.Len(t, props, 2)
	assert.Equal(t, []string{"a", "b"}, props.Names())
	if diff := cmp.Diff(Properties{"a": IntegerValue(1), "b": StringValue("2"), "c": StringValue("3")}, clone); diff != "" {
		t.Fatalf("unexpected clone (-want +got):\n%s", diff)
	}
}

func TestServiceInterfaces(t *testing.T) {
	set := NewServiceInterfaces("com.acme.B", "com.acme.A", "com.acme.B")
	assert.Len(t, set, 2)
	assert.True(t, set.Has("com.acme.A"))
	assert.False(t, set.Has("com.acme.C"))
	assert.Equal(t, []string{"com.acme.A", "com.acme.B"}, set.Sorted())
	assert.Equal(t, []string{}, ServiceInterfaces{}.Sorted())
}

func TestComponentReportOrdering(t *testing.T) {
	report := NewComponentReport(ComponentMetadata{
		Class:          "com.acme.FooImpl",
		DescriptorPath: "/OSGI-INF/com.acme.FooImpl.xml",
		Found:          true,
		Interfaces:     NewServiceInterfaces("z.Z", "a.A"),
		Properties:     Properties{"level": IntegerValue(3), "label": StringValue("x")},
	})
	want := ComponentReport{
		Class:      "com.acme.FooImpl",
		Descriptor: "/OSGI-INF/com.acme.FooImpl.xml",
		Found:      true,
		Interfaces: []string{"a.A", "z.Z"},
		Properties: []PropertyReport{
			{Name: "label", Type: ValueKindString, Value: "x"},
			{Name: "level", Type: ValueKindInteger, Value: 3},
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}

	missing := NewComponentReport(ComponentMetadata{Class: "com.acme.Plain"})
	assert.Equal(t, []string{}, missing.Interfaces)
	assert.Equal(t, []PropertyReport{}, missing.Properties)
}

func TestServiceReferenceRanking(t *testing.T) {
	assert.Equal(t, 0, ServiceReference{}.Ranking())
	assert.Equal(t, 10, ServiceReference{Properties: Properties{PropertyServiceRanking: IntegerValue(10)}}.Ranking())
	assert.Equal(t, 0, ServiceReference{Properties: Properties{PropertyServiceRanking: StringValue("10")}}.Ranking())
}
