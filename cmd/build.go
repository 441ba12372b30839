package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jspark.dev/internal/config"
	"jspark.dev/internal/content"
	"jspark.dev/internal/models"
	"jspark.dev/internal/services"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a static snapshot of the content",
	Long: `The build command renders every published article to HTML under
the output directory and writes JSON index files for the project
registry and the article listing, so the whole data layer can be
served as static files. Drafts are excluded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig)
	},
}

func runBuild(cfg *config.Config) error {
	fmt.Printf("Building site snapshot into '%s'\n", cfg.OutputDir)

	store, err := content.NewStore(cfg.ContentDir)
	if err != nil {
		return err
	}
	articleService := services.NewArticleService(store)
	projectService := services.NewProjectService(config.LoadProjects(cfg.DataPath))

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("cleaning output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating output directory '%s': %w", cfg.OutputDir, err)
	}

	published := articleService.Published()
	for _, article := range published {
		if err := writeArticlePage(cfg.OutputDir, article); err != nil {
			return err
		}
		fmt.Printf("Rendered: posts/%s/index.html\n", article.Slug)
	}

	if err := writeJSON(filepath.Join(cfg.OutputDir, "api", "projects", "index.json"), projectService.GetAll()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "api", "articles", "index.json"), listingOf(published)); err != nil {
		return err
	}

	fmt.Printf("Build complete: %d article(s), %d project(s).\n", len(published), len(projectService.GetAll()))
	return nil
}

// listing is the metadata-only shape written to the article index.
type listing struct {
	Slug string             `json:"slug"`
	Meta models.ArticleMeta `json:"meta"`
}

func listingOf(articles []models.Article) []listing {
	out := make([]listing, 0, len(articles))
	for _, a := range articles {
		out = append(out, listing{Slug: a.Slug, Meta: a.Meta})
	}
	return out
}

func writeArticlePage(outputDir string, article models.Article) error {
	html, err := content.RenderBody(article.Body)
	if err != nil {
		return fmt.Errorf("rendering article '%s': %w", article.Slug, err)
	}

	dir := filepath.Join(outputDir, "posts", article.Slug)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating directory '%s': %w", dir, err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing '%s': %w", path, err)
	}
	return nil
}

func writeJSON(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for '%s': %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating '%s': %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding '%s': %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
