package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/render"
	"github.com/heartmarshall/vocabcheck/internal/validator"
)

// errInvalidWords is returned with --strict when the text uses words outside
// the vocabulary.
var errInvalidWords = errors.New("text contains words outside the vocabulary")

func checkCmd(c *cli) *cobra.Command {
	var (
		level  string
		html   bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Highlight the words of a text that are outside a level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if level == "" {
				level = c.defaultLevel
			}
			if level == "" {
				return domain.NewValidationError("level", "required")
			}

			vocab, err := c.catalog.Vocabulary(cmd.Context(), level)
			if err != nil {
				return err
			}

			res, err := validator.Validate(cmd.Context(), text, c.tagger, vocab)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if html {
				fmt.Fprintln(out, render.HTML(res))
			} else {
				term := render.NewTerminal()
				fmt.Fprintln(out, term.Text(res))
				fmt.Fprintln(out, term.Summary(res))
			}

			if strict && len(res.InvalidWords()) > 0 {
				return errInvalidWords
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "level name (default: the configured default level)")
	cmd.Flags().BoolVar(&html, "html", false, "emit HTML instead of terminal output")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any word is outside the vocabulary")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
