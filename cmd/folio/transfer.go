package main

import (
	"fmt"
	"os"
	"time"

	"github.com/eringen/folio"
	"github.com/spf13/cobra"
)

func init() {
	export := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the snapshot as JSON to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			if len(args) == 0 {
				return folio.ExportSnapshot(s.store, os.Stdout)
			}
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := folio.ExportSnapshot(s.store, f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the snapshot with posts from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			n, err := folio.ImportSnapshot(s.store, f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d posts\n", n)
			return nil
		},
	}

	backup := &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped snapshot copy to the backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			path, err := folio.WriteBackup(s.store, s.cfg.BackupDir, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	rootCmd.AddCommand(export, imp, backup)
}
