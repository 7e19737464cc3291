package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"osgi-mock/internal/testutil"
)

// sampleClasspath lays out a class directory and a bundle archive with
// three components between them, and returns both entries in search order.
func sampleClasspath(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	classes := testutil.WriteTree(t, filepath.Join(dir, "classes"), map[string]string{
		"OSGI-INF/com.acme.FooImpl.xml": `<?xml version="1.0" encoding="UTF-8"?>
<components>
  <component name="com.acme.FooImpl">
    <service>
      <provide interface="com.acme.Foo"/>
      <provide interface=""/>
    </service>
    <property name="level" type="Integer" value="3"/>
    <property name="label" value="x"/>
  </component>
</components>
`,
		"OSGI-INF/serviceComponents.xml": "<components/>",
	})
	bundle := testutil.WriteArchive(t, filepath.Join(dir, "lib", "bar.jar"), map[string]string{
		"OSGI-INF/com.acme.BarImpl.xml": testutil.Descriptor("com.acme.Bar",
			`<property name="service.ranking" type="Integer" value="10"/>`),
		"OSGI-INF/com.acme.EmptyImpl.xml": `<components/>`,
		"META-INF/MANIFEST.MF":            "Manifest-Version: 1.0\n",
	})
	return []string{classes, bundle}
}

func writeConfigLayer(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
