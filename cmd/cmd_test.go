package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// siteFixture writes a minimal site and a config file pointing at it.
func siteFixture(t *testing.T) (configPath, outputDir string) {
	t.Helper()
	root := t.TempDir()
	outputDir = filepath.Join(root, "public_site")

	writeFile(t, filepath.Join(root, "data.json"),
		`[{"urlFriendlyId": "first", "title": "First", "createdOn": "2020-01-01", "categories": []}]`)
	writeFile(t, filepath.Join(root, "templates", "partials", "head.html"), `<title>{{.Title}}</title>`)
	writeFile(t, filepath.Join(root, "templates", "blog.html"), `{{template "head" .Site}}{{.Post.Title}}`)
	writeFile(t, filepath.Join(root, "templates", "index.html"), `{{template "head" .Site}}{{len .Posts}}`)
	writeFile(t, filepath.Join(root, "assets", "robots.txt"), "User-agent: *")

	configPath = filepath.Join(root, "config.yaml")
	writeFile(t, configPath, "siteTitle: CLI Blog\n"+
		"outputDir: "+outputDir+"\n"+
		"dataFile: "+filepath.Join(root, "data.json")+"\n"+
		"templatesDir: "+filepath.Join(root, "templates")+"\n"+
		"assetsDir: "+filepath.Join(root, "assets")+"\n")
	return configPath, outputDir
}

func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
	})
	return Execute(), out.String()
}

func TestRootCommandBuilds(t *testing.T) {
	configPath, outputDir := siteFixture(t)

	code, out := execute(t, "--config", configPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Build complete")

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<title>CLI Blog</title>1", string(index))
	assert.FileExists(t, filepath.Join(outputDir, "view", "blog", "first", "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "robots.txt"))
	assert.FileExists(t, filepath.Join(outputDir, "js", "main.js"))
}

func TestBuildSubcommand(t *testing.T) {
	configPath, outputDir := siteFixture(t)

	code, _ := execute(t, "build", "--config", configPath)
	require.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(outputDir, "index.html"))
}

func TestBuildFailureExitCode(t *testing.T) {
	configPath, outputDir := siteFixture(t)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(configPath), "data.json")))

	code, _ := execute(t, "--config", configPath)
	assert.Equal(t, 3, code)
	assert.NoFileExists(t, filepath.Join(outputDir, "index.html"))
}

func TestMissingConfigFile(t *testing.T) {
	code, _ := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotEqual(t, 0, code)
}

func TestRejectsArguments(t *testing.T) {
	code, _ := execute(t, "unexpected")
	assert.NotEqual(t, 0, code)
}

func TestVersion(t *testing.T) {
	code, out := execute(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, Version+"\n", out)
}

func TestPreviewHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "home")
	writeFile(t, filepath.Join(dir, "page", "1", "index.html"), "oldest")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "view"), 0o755))

	srv := httptest.NewServer(previewHandler(dir))
	t.Cleanup(srv.Close)

	get := func(path string) (int, string, http.Header) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body), resp.Header
	}

	status, body, header := get("/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "home", body)
	assert.Equal(t, "no-cache, no-store, must-revalidate", header.Get("Cache-Control"))

	status, body, _ = get("/page/1/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "oldest", body)

	status, _, _ = get("/view/")
	assert.Equal(t, http.StatusNotFound, status, "directory listings are disabled")
}
