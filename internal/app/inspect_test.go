package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osgi-mock/internal/testutil"
	"osgi-mock/internal/types"
)

func TestInspectAllDescriptors(t *testing.T) {
	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{Classpath: sampleClasspath(t)})
	require.NoError(t, err)

	classes := make([]string, 0, len(result.Components))
	for _, component := range result.Components {
		classes = append(classes, component.Class)
	}
	if diff := cmp.Diff([]string{"com.acme.BarImpl", "com.acme.EmptyImpl", "com.acme.FooImpl"}, classes); diff != "" {
		t.Fatalf("unexpected classes (-want +got):\n%s", diff)
	}

	foo := result.Components[2]
	assert.True(t, foo.Found)
	assert.Equal(t, "/OSGI-INF/com.acme.FooImpl.xml", foo.DescriptorPath)
	assert.Equal(t, []string{"com.acme.Foo"}, foo.Interfaces.Sorted())
	want := types.Properties{"level": types.IntegerValue(3), "label": types.StringValue("x")}
	if diff := cmp.Diff(want, foo.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}

	empty := result.Components[1]
	assert.True(t, empty.Found)
	assert.Empty(t, empty.Interfaces)
	assert.Empty(t, empty.Properties)
}

func TestInspectNamedClasses(t *testing.T) {
	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{
		Classpath: sampleClasspath(t),
		Classes:   []string{"com.acme.Plain", " com.acme.BarImpl ", "com.acme.Plain"},
	})
	require.NoError(t, err)
	require.Len(t, result.Components, 2)

	plain := result.Components[0]
	assert.Equal(t, "com.acme.Plain", plain.Class)
	assert.False(t, plain.Found)
	assert.Empty(t, plain.Interfaces)
	assert.Empty(t, plain.Properties)

	bar := result.Components[1]
	assert.True(t, bar.Interfaces.Has("com.acme.Bar"))
	assert.True(t, bar.Properties[types.PropertyServiceRanking].Equal(types.IntegerValue(10)))
}

func TestInspectConfigLayers(t *testing.T) {
	layer := writeConfigLayer(t, `
config_version: "v1"
pids:
  com.acme.FooImpl:
    level: 9
    owner: "ops"
`)
	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{
		Classpath:    sampleClasspath(t),
		Classes:      []string{"com.acme.FooImpl"},
		ConfigLayers: []string{layer},
	})
	require.NoError(t, err)
	require.Len(t, result.Components, 1)

	want := types.Properties{
		"level": types.IntegerValue(9),
		"label": types.StringValue("x"),
		"owner": types.StringValue("ops"),
	}
	if diff := cmp.Diff(want, result.Components[0].Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name     string
		req      func(t *testing.T) InspectRequest
		wantCode errbuilder.ErrCode
	}{
		{
			name: "empty classpath",
			req: func(t *testing.T) InspectRequest {
				return InspectRequest{Classpath: []string{" "}}
			},
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name: "missing classpath entry",
			req: func(t *testing.T) InspectRequest {
				return InspectRequest{Classpath: []string{filepath.Join(t.TempDir(), "absent")}}
			},
			wantCode: errbuilder.CodeNotFound,
		},
		{
			name: "malformed descriptor",
			req: func(t *testing.T) InspectRequest {
				dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
					"OSGI-INF/com.acme.Broken.xml": "<components><component></components>",
				})
				return InspectRequest{Classpath: []string{dir}}
			},
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name: "invalid integer property",
			req: func(t *testing.T) InspectRequest {
				dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
					"OSGI-INF/com.acme.Bad.xml": testutil.Descriptor("com.acme.Bad",
						`<property name="count" type="Integer" value="abc"/>`),
				})
				return InspectRequest{Classpath: []string{dir}}
			},
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name: "missing config layer",
			req: func(t *testing.T) InspectRequest {
				return InspectRequest{
					Classpath:    sampleClasspath(t),
					ConfigLayers: []string{filepath.Join(t.TempDir(), "absent.yaml")},
				}
			},
			wantCode: errbuilder.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService().Inspect(t.Context(), tt.req(t))
			require.Error(t, err)
			if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected code (-want +got):\n%s", diff)
			}
		})
	}
}
