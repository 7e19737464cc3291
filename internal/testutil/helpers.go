// Package testutil provides shared test helpers for building classpath
// fixtures on disk.
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree writes files (slash separated names relative to dir) and
// returns dir.
func WriteTree(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		target := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, []byte(content), 0644))
	}
	return dir
}

// WriteArchive writes a jar-style zip archive at path containing files,
// in name order, and returns path.
func WriteArchive(t *testing.T, path string, files map[string]string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	writer := zip.NewWriter(out)
	for _, name := range names {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return path
}

// Descriptor returns a minimal single-component description providing
// iface, with the given raw <property> elements.
func Descriptor(iface string, properties ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<components xmlns:scr="http://www.osgi.org/xmlns/scr/v1.1.0">
  <scr:component name="fixture">
    <service>
      <provide interface="` + iface + `"/>
    </service>
`
	for _, property := range properties {
		body += "    " + property + "\n"
	}
	return body + "  </scr:component>\n</components>\n"
}
