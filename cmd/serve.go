package cmd

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"jspark.dev/internal/content"
	"jspark.dev/internal/handlers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the content as a read-only JSON API",
	Long: `The serve command loads the project registry and the article
store, then starts an HTTP server exposing them under /api/. The
content directory is watched for changes and the article store is
reloaded automatically; the project registry is fixed at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(appConfig.ContentDir)
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		go watchContent(watcher, store)

		if err := watchTree(watcher, appConfig.ContentDir); err != nil {
			log.Printf("Failed to watch %s: %v", appConfig.ContentDir, err)
		}

		log.Printf("Serving on %s (content: %s, data: %s)", appConfig.Addr, appConfig.ContentDir, appConfig.DataPath)
		return http.ListenAndServe(appConfig.Addr, handlers.SetupRoutes(appConfig, store))
	},
}

// watchTree adds root and every directory below it to the watcher.
// fsnotify watches are non-recursive, so each subdirectory needs its
// own watch or edits to nested articles go unnoticed.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if watchErr := watcher.Add(path); watchErr != nil {
				log.Printf("Failed to watch %s: %v", path, watchErr)
			}
		}
		return nil
	})
}

// watchContent reloads the article store when files under the
// content directory change. Reloads are debounced because editors
// tend to fire several events per save.
func watchContent(watcher *fsnotify.Watcher, store *content.Store) {
	var reloadTimer *time.Timer
	debounce := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

				// A directory created inside a watched path is not
				// watched automatically; add it so its files are seen.
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("Error adding new directory %s to watcher: %v", event.Name, err)
					}
				}

				if reloadTimer != nil {
					reloadTimer.Stop()
				}
				reloadTimer = time.AfterFunc(debounce, func() {
					if err := store.Reload(); err != nil {
						log.Printf("Error reloading content: %v", err)
					} else {
						log.Println("Content reloaded.")
					}
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// isDir reports whether path exists and is a directory
func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
