package converter

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches into a fresh directory and resets the command flags.
func chdirTemp(t *testing.T) string {
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		keysFile = DefaultKeysFile
		outputFile = DefaultOutputFile
		rootCmd.SetArgs(nil)
	})

	keysFile = DefaultKeysFile
	outputFile = DefaultOutputFile
	rootCmd.SetOut(ioutil.Discard)
	rootCmd.SetErr(ioutil.Discard)

	return dir
}

func TestRootCmdDefaultPaths(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("wif_keys.json", []byte("[\n\"5Jxxxx1\",\n\"5Jxxxx2\"\n]\n"), 0644))

	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile("import_wif_keys.json")
	require.NoError(t, err)

	expected := header +
		">>> import_key 5Jxxxx1\n" +
		">>> import_key 5Jxxxx2\n" +
		trailer
	assert.Equal(t, expected, string(content))
}

func TestRootCmdPathFlags(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("keys.txt", []byte("\"5Jxxxx3\",\n"), 0644))

	rootCmd.SetArgs([]string{"--keys", "keys.txt", "--output", "script.txt"})
	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile("script.txt")
	require.NoError(t, err)
	assert.Equal(t, header+">>> import_key 5Jxxxx3\n"+trailer, string(content))
	assert.NoFileExists(t, "import_wif_keys.json")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("wif_keys.json", []byte("[\n]\n"), 0644))

	rootCmd.SetArgs([]string{"extra"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.NoFileExists(t, "import_wif_keys.json")
}
