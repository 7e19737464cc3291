package types

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoader struct {
	names []string
}

func (l *recordingLoader) OpenResource(name string) (io.ReadCloser, error) {
	l.names = append(l.names, name)
	return io.NopCloser(strings.NewReader(name)), nil
}

func TestClassResourceNames(t *testing.T) {
	tests := []struct {
		class    string
		resource string
		want     string
	}{
		{class: "com.acme.Foo", resource: "/OSGI-INF/com.acme.Foo.xml", want: "OSGI-INF/com.acme.Foo.xml"},
		{class: "com.acme.Foo", resource: "Foo.properties", want: "com/acme/Foo.properties"},
		{class: "Foo", resource: "Foo.properties", want: "Foo.properties"},
		{class: "com.acme.Foo", resource: "//absolute.xml", want: "absolute.xml"},
	}
	for _, tt := range tests {
		got := Class{Name: tt.class}.ResourceName(tt.resource)
		assert.Equal(t, tt.want, got, "%s %s", tt.class, tt.resource)
	}
	assert.Equal(t, "com/acme", Class{Name: "com.acme.Foo"}.PackagePath())
	assert.Equal(t, "", Class{Name: "Foo"}.PackagePath())
}

func TestClassOpenResourceUsesOwnLoader(t *testing.T) {
	loader := &recordingLoader{}
	class := Class{Name: "com.acme.Foo", Loader: loader}

	stream, err := class.OpenResource("/OSGI-INF/com.acme.Foo.xml")
	require.NoError(t, err)
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "OSGI-INF/com.acme.Foo.xml", string(data))
	assert.Equal(t, []string{"OSGI-INF/com.acme.Foo.xml"}, loader.names)
}
