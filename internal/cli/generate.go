package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func generateCmd() *cobra.Command {
	var (
		length       int
		upper, lower bool
		digits       bool
		special      bool
		count        int
		showStrength bool
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			req := model.GenerateRequest{
				Length:         &length,
				IncludeUpper:   &upper,
				IncludeLower:   &lower,
				IncludeDigits:  &digits,
				IncludeSpecial: &special,
			}

			svc := service.NewGeneratorService()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				resp, err := svc.Generate(req)
				if err != nil {
					return err
				}
				if !showStrength {
					fmt.Fprintln(out, resp.Password)
					continue
				}
				s := svc.Strength(model.StrengthRequest{Password: resp.Password})
				fmt.Fprintf(out, "%s\t%d\t%s\n", resp.Password, s.Score, s.Label)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&length, "length", "l", service.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", service.MinLength, service.MaxLength))
	c.Flags().BoolVar(&upper, "upper", true, "include uppercase letters")
	c.Flags().BoolVar(&lower, "lower", true, "include lowercase letters")
	c.Flags().BoolVar(&digits, "digits", true, "include digits")
	c.Flags().BoolVar(&special, "special", false, "include special characters")
	c.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	c.Flags().BoolVar(&showStrength, "strength", false, "print score and label next to each password")
	return c
}
