package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/config"
	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/logic"
	"dsaexplorer/internal/playground"
	"dsaexplorer/internal/ui/views"
)

type searchOptions struct {
	Query      string
	Category   string
	Difficulty string
}

func (o searchOptions) validate() error {
	if o.Category != domain.All && !slices.Contains(domain.Categories, o.Category) {
		return fmt.Errorf("unknown category %q", o.Category)
	}
	if o.Difficulty != domain.All && !domain.Difficulty(o.Difficulty).Valid() {
		return fmt.Errorf("unknown difficulty %q", o.Difficulty)
	}
	return nil
}

// loadConfig falls back to defaults when the file is broken
func loadConfig(path string) *config.Config {
	cfg, err := config.NewConfigService(path).Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

func configDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Playground.DelayMS) * time.Millisecond
}

func search(w io.Writer, opts searchOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	c, err := catalog.Load()
	if err != nil {
		return err
	}

	topics := logic.FilterTopics(c.All(), domain.Criteria{
		Query:      opts.Query,
		Category:   opts.Category,
		Difficulty: opts.Difficulty,
	})
	if len(topics) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", views.NoTopicsTitle, views.NoTopicsHint)
		return err
	}

	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []string{
			t.ID,
			string(t.Difficulty),
			t.Category,
			t.Title,
			strings.Join(logic.MatchingTags(t, opts.Query), ", "),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DIFFICULTY", "CATEGORY", "TITLE", "MATCHED TAGS").
		Rows(rows...)

	_, err = fmt.Fprintf(w, "%s\n%d of %d topics\n", tbl.Render(), len(topics), c.Len())
	return err
}

func show(w io.Writer, id, lang string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	topic, err := c.Lookup(id)
	if err != nil {
		return err
	}

	r := views.NewRenderer(views.ThemeDark)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s, %s)\n%s\n", topic.Title, topic.Category, topic.Difficulty, topic.Description))
	b.WriteString(fmt.Sprintf("Time: %s   Space: %s\n", topic.TimeComplexity, topic.SpaceComplexity))
	for i, name := range views.TopicTabs {
		b.WriteString(fmt.Sprintf("\n== %s ==\n\n", name))
		b.WriteString(views.StripANSI(r.TopicBody(topic, i, lang, 100)))
		b.WriteString("\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func export(w io.Writer, output string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	_, err = fmt.Fprintf(w, "Exported %d topics to %s\n", c.Len(), output)
	return err
}

func runFile(ctx context.Context, w io.Writer, path, lang string, delay time.Duration) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if lang == "" {
		lang = languageFromExt(path)
	}

	res, err := playground.NewRunner(delay).Run(ctx, lang, string(source))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.Output)
	return err
}

func languageFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return "java"
	case ".js", ".mjs":
		return "javascript"
	default:
		return "python"
	}
}
