// cmd/serve.go
package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generated site locally for preview",
	Long: `The serve command serves the output directory over HTTP so a finished build
can be previewed in a browser. It does not rebuild on change; run build again
and reload the page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(appConfig.OutputDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("output directory %q not found; run build first", appConfig.OutputDir)
		}

		addr := fmt.Sprintf(":%d", serverPort)
		slog.Info("Serving site", "dir", appConfig.OutputDir, "url", "http://localhost"+addr)

		srv := &http.Server{
			Addr:              addr,
			Handler:           previewHandler(appConfig.OutputDir),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	},
}

// previewHandler serves dir without directory listings and with caching
// disabled.
func previewHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			clean := path.Clean("/" + r.URL.Path)
			index := filepath.Join(dir, filepath.FromSlash(clean), "index.html")
			if _, err := os.Stat(index); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
