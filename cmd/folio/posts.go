package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eringen/folio"
	"github.com/eringen/folio/markdown"
	"github.com/spf13/cobra"
)

func init() {
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered by category and tag",
		RunE:  runList,
	}
	list.Flags().String("category", "", "Only posts in this category")
	list.Flags().StringP("tag", "t", "", "Only posts carrying this tag")
	list.Flags().StringP("query", "q", "", "Fuzzy search over title, excerpt, category and tags")
	list.Flags().Bool("json", false, "Print JSON instead of text")

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			printPosts(folio.SearchPosts(s.store.Load(), strings.Join(args, " ")))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	show.Flags().IntP("width", "w", 80, "Word wrap width")

	tags := &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags of all posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			for _, t := range folio.DistinctTags(s.store.Load()) {
				fmt.Println(t)
			}
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List the category facet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			for _, c := range folio.NewCatalog(cfg.Categories).Categories() {
				fmt.Println(c)
			}
			return nil
		},
	}

	rootCmd.AddCommand(list, search, show, tags, categories)
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	tag, _ := cmd.Flags().GetString("tag")
	query, _ := cmd.Flags().GetString("query")
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	sel := folio.Selection{Category: category, Tag: tag}
	posts := folio.SearchPosts(folio.FilterPosts(s.store.Load(), sel), query)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	}
	printPosts(posts)
	return nil
}

func printPosts(posts []folio.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts found matching your filters.")
		return
	}
	for _, p := range posts {
		fmt.Printf("%-32s  %-20s  %-18s  %s\n", p.ID, p.Category, p.Date, p.Title)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	post, ok := s.store.FindByID(args[0])
	if !ok {
		return fmt.Errorf("%s: %w", args[0], folio.ErrNotFound)
	}

	var source folio.DocumentSource = folio.DirSource{FS: os.DirFS(s.cfg.ContentDir)}
	if s.cfg.ContentBaseURL != "" {
		source = folio.NewHTTPSource(s.cfg.ContentBaseURL, s.cfg.ContentTimeout)
	}
	loader := &folio.ContentLoader{Source: source, Logger: s.cfg.Logger()}

	ctx, cancel := context.WithTimeout(cmd.Context(), s.cfg.ContentTimeout+time.Second)
	defer cancel()
	body := loader.Load(ctx, post)
	doc := fmt.Sprintf("*%s · %s · %s*\n\n%s", post.Category, post.Date, post.ReadTime, body)
	if !strings.HasPrefix(body, "# ") {
		doc = "# " + post.Title + "\n\n" + doc
	}

	out, err := markdown.Terminal(doc, width)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
