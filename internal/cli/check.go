package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/breach"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	var apiURL string

	c := &cobra.Command{
		Use:   "check [password]",
		Short: "Check a password against known breaches",
		Long: "Check a password against the Pwned Passwords range API. Only the first five\n" +
			"characters of its SHA-1 hash are sent. Reads the password from stdin when no\n" +
			"argument is given.\n\n" +
			"Exit status is 2 when the password was found and 3 when the lookup failed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.BreachAPIURL = apiURL
			}

			password, err := passwordArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			log, err := opts.newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			svc := service.NewBreachService(breach.NewClient(cfg.Breach(), log))
			resp, err := svc.Check(cmd.Context(), model.BreachCheckRequest{Password: password})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)

			switch {
			case resp.Breached == nil:
				return &exitError{code: ExitUnknown}
			case *resp.Breached:
				return &exitError{code: ExitBreached}
			}
			return nil
		},
	}

	c.Flags().StringVar(&apiURL, "api-url", "", "range API base URL (overrides BREACH_API_URL)")
	return c
}

// passwordArg returns the positional password or the first line of r.
func passwordArg(args []string, r io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
