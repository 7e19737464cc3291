package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osgi-mock/internal/testutil"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{Classpath: sampleClasspath(t)})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"com.acme.BarImpl", "com.acme.EmptyImpl", "com.acme.FooImpl"}, result.Classes); diff != "" {
		t.Fatalf("unexpected classes (-want +got):\n%s", diff)
	}
}

func TestValidateStopsAtBrokenDescriptor(t *testing.T) {
	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"OSGI-INF/com.acme.Good.xml":   testutil.Descriptor("com.acme.Good"),
		"OSGI-INF/com.acme.Broken.xml": "<components><component></components>",
	})
	_, err := NewService().Validate(t.Context(), ValidateRequest{Classpath: []string{dir}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestListApp(t *testing.T) {
	result, err := NewService().List(t.Context(), ListRequest{Classpath: sampleClasspath(t)})
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.BarImpl", "com.acme.EmptyImpl", "com.acme.FooImpl"}, result.Classes)

	_, err = NewService().List(t.Context(), ListRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
