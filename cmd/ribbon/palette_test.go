package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

func findRoleLine(t *testing.T, out, role string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, role+" ") {
			return line
		}
	}
	t.Fatalf("role %s not listed in:\n%s", role, out)
	return ""
}

func TestPalette_ListsEveryRole(t *testing.T) {
	out, _, err := execute(t, newTestApp(t, stubFS{cwd: "/"}), "palette")
	require.NoError(t, err)

	assert.Contains(t, out, "theme: default")
	for _, role := range theme.RoleNames() {
		findRoleLine(t, out, role)
	}

	line := findRoleLine(t, out, "path_bg")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), strconv.Itoa(int(theme.Default().PathBG))))
}

func TestPalette_CustomColorsFromConfig(t *testing.T) {
	path := writeConfig(t, "colors:\n  path_bg: 99\n")

	out, _, err := execute(t, newTestApp(t, stubFS{cwd: "/"}), "palette", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "theme: custom")
	line := findRoleLine(t, out, "path_bg")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "99"))
}

func TestPalette_ThemeFlag(t *testing.T) {
	out, _, err := execute(t, newTestApp(t, stubFS{cwd: "/"}), "palette", "--theme", "light")
	require.NoError(t, err)

	assert.Contains(t, out, "theme: light")
	line := findRoleLine(t, out, "path_bg")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), strconv.Itoa(int(theme.Light().PathBG))))
}
