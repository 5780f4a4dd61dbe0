package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"contact", "add"},
		{"contact", "import"},
		{"contact", "list"},
		{"game", "play"},
		{"game", "scores"},
		{"db", "init"},
		{"db", "ping"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestSubcommandsUseConfigFile(t *testing.T) {
	dbPath := t.TempDir() + "/phonebook.db"
	cfgPath := testutil.WriteFile(t, "config.yaml", `
database:
  driver: sqlite
  path: `+dbPath+`
log:
  path: `+t.TempDir()+`/phonebook.log
`)

	out, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "db", "init", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "contact", "add", "--name", "Alice", "--phone", "1")
	require.NoError(t, err)

	out, err = testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "contact", "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "Alice,1\n", out)
}

func writeSQLiteConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return testutil.WriteFile(t, "config.yaml", `
database:
  driver: sqlite
  path: `+filepath.Join(dir, "phonebook.db")+`
log:
  path: `+filepath.Join(dir, "phonebook.log")+`
`)
}

func TestRunMenuWithPipedInput(t *testing.T) {
	cfgPath := writeSQLiteConfig(t)

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "db", "init", "--quiet")
	require.NoError(t, err)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader("1\nAlice\n555-1000\n5\nAlice\n9\n8\n"))
	root.SetOut(&out)
	testutil.SetupCobraCommand(root, []string{"--config", cfgPath})

	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "User added!")
	assert.Contains(t, got, "555-1000")
	assert.Contains(t, got, "Invalid choice. Please try again.")
	assert.Contains(t, got, "Exiting the program.")

	list, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "contact", "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "Alice,555-1000\n", list)
}

func TestRunMenuStopsAtEndOfInput(t *testing.T) {
	cfgPath := writeSQLiteConfig(t)

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "db", "init", "--quiet")
	require.NoError(t, err)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader("4\n"))
	root.SetOut(&out)
	testutil.SetupCobraCommand(root, []string{"--config", cfgPath})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "The phonebook is empty.")
	assert.Contains(t, out.String(), "Exiting the program.")

	list, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", cfgPath, "contact", "list", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, list)
}
