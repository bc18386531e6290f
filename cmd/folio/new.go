package main

import (
	"fmt"
	"io"
	"os"

	"github.com/eringen/folio"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Compose a post and prepend it to the snapshot",
		RunE:  runNew,
	}
	cmd.Flags().String("title", "", "Post title (required)")
	cmd.Flags().String("excerpt", "", "Short summary (required)")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("content", "", "Markdown body; use - to read stdin")
	rootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	var d folio.Draft
	d.Title, _ = cmd.Flags().GetString("title")
	d.Excerpt, _ = cmd.Flags().GetString("excerpt")
	d.Category, _ = cmd.Flags().GetString("category")
	d.Tags, _ = cmd.Flags().GetString("tags")
	d.Content, _ = cmd.Flags().GetString("content")
	if d.Content == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading content: %w", err)
		}
		d.Content = string(b)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	composer := &folio.Composer{Store: s.store, ReadTime: s.cfg.ReadTime}
	// A write failure comes back as an error here; nothing else would keep the post.
	_, post, err := composer.Publish(s.store.Load(), d)
	if err != nil {
		return err
	}
	fmt.Printf("Published %s (%s)\n", post.ID, post.Link())
	return nil
}
