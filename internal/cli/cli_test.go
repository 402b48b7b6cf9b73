package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tablr"
	"github.com/bjaus/tablr/internal/config"
)

// runCommand executes the root command with stdin content and returns
// stdout. Global stdin detection is stubbed so tests behave the same on a
// TTY and in CI.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	orig := stdinIsPiped
	stdinIsPiped = func() bool { return stdin != "" }
	defer func() { stdinIsPiped = orig }()

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStdin(t *testing.T) {
	out, err := runCommand(t, "{\"name\":\"a\",\"id\":1}\n{\"name\":\"bb\",\"id\":22}\n",
		"--input", "jsonl", "--width", "80")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+------+----+",
		"| name | id |",
		"+------+----+",
		"| a    |  1 |",
		"| bb   | 22 |",
		"+------+----+",
	}, "\n")+"\n", out)
}

func TestRootCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,id\na,1\nbb,22\n"), 0o644))

	out, err := runCommand(t, "", path, "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "| name | id |")
	assert.Contains(t, out, "| bb   | 22 |")
}

func TestRootCommandNoInputShowsHelp(t *testing.T) {
	out, err := runCommand(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "tablr [file]")
}

func TestRootCommandSplitsAtWidth(t *testing.T) {
	out, err := runCommand(t, "{\"name\":\"a\",\"id\":1}\n",
		"-i", "jsonl", "-w", "10", "-r", "name")
	require.NoError(t, err)
	blocks := strings.Split(strings.TrimRight(out, "\n"), "\n\n")
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "| name |")
	assert.Contains(t, blocks[1], "| name | id |")
}

func TestRootCommandAutoDetectsFormat(t *testing.T) {
	out, err := runCommand(t, "- name: Ada\n  id: 1\n", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "| name | id |")
	assert.Contains(t, out, "| Ada  |  1 |")
}

func TestRootCommandEmptyInputWritesNothing(t *testing.T) {
	orig := stdinIsPiped
	stdinIsPiped = func() bool { return true }
	defer func() { stdinIsPiped = orig }()

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(""))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--width", "80"})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRootCommandUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "{\"a\":1}\n", "-i", "xml")
	require.ErrorIs(t, err, tablr.ErrUnsupportedFormat)
}

func TestRootCommandDecodeError(t *testing.T) {
	_, err := runCommand(t, "not json at all", "-i", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json input")
}

func TestRootCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestRootCommandConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 10\nrepeat = [\"name\"]\n"), 0o644))

	out, err := runCommand(t, "{\"name\":\"a\",\"id\":1}\n",
		"-i", "jsonl", "--config", path)
	require.NoError(t, err)
	blocks := strings.Split(strings.TrimRight(out, "\n"), "\n\n")
	assert.Len(t, blocks, 2)
}

func TestRootCommandFlagBeatsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 10\n"), 0o644))

	out, err := runCommand(t, "{\"name\":\"a\",\"id\":1}\n",
		"-i", "jsonl", "--config", path, "--width", "80")
	require.NoError(t, err)
	assert.NotContains(t, out, "\n\n")
}

func TestRootCommandMissingConfig(t *testing.T) {
	_, err := runCommand(t, "{\"a\":1}\n",
		"-i", "jsonl", "--config", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestApplyConfig(t *testing.T) {
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--width", "120"}))

	width, input := 120, "auto"
	var repeat []string
	applyConfig(cmd.Flags(), config.Config{Width: 10, Input: "csv", Repeat: []string{"id"}}, &width, &input, &repeat)

	assert.Equal(t, 120, width, "explicit flag wins over config")
	assert.Equal(t, "csv", input)
	assert.Equal(t, []string{"id"}, repeat)
}

func TestDetectWidth(t *testing.T) {
	orig := termGetSize
	defer func() { termGetSize = orig }()

	termGetSize = func(int) (int, int, error) { return 42, 24, nil }
	assert.Equal(t, 42, detectWidth())

	termGetSize = func(int) (int, int, error) { return 0, 0, errors.New("not a tty") }
	t.Setenv("COLUMNS", "55")
	assert.Equal(t, 55, detectWidth())

	t.Setenv("COLUMNS", "")
	assert.Equal(t, tablr.DefaultWidth, detectWidth())
}
