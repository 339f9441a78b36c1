package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/export"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func exportCmd() *cobra.Command {
	var format string
	var outDir string

	c := &cobra.Command{
		Use:   "export [passwords...]",
		Short: "Render passwords as a text or JSON export",
		Long: "Render passwords as a text or JSON export. Passwords come from the arguments,\n" +
			"or one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			passwords := args
			if len(passwords) == 0 {
				var err error
				if passwords, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			svc := service.NewExportService(export.New(nil))
			resp, err := svc.Export(model.ExportRequest{Passwords: passwords, Format: format})
			if err != nil {
				return err
			}

			if outDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
				return nil
			}

			if err := os.MkdirAll(outDir, 0o700); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path := filepath.Join(outDir, resp.Filename)
			if err := os.WriteFile(path, []byte(resp.Content), 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "text", "export format: text|json")
	c.Flags().StringVarP(&outDir, "out", "o", "", "write the export into this directory instead of stdout")
	return c
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read passwords: %w", err)
	}
	return lines, nil
}
