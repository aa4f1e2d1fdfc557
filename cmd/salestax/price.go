package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/salestax/internal/app"
	"github.com/Veraticus/salestax/internal/cli"
	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/config"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type pricedBasket struct {
	source  string
	receipt string
}

func priceCmd() *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "price [file...]",
		Short: "Print a receipt for each basket file",
		Long: `Price one basket per file, one item per line in the form
"<quantity> <name> at <price>". With no files, or with "-", the basket is
read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{config.StdinPath}
			}

			results, err := priceFiles(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr(), args, showProgress && len(args) > 1)
			if err != nil {
				return err
			}

			return printReceipts(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar when pricing several files")

	return cmd
}

func priceFiles(ctx context.Context, stdin io.Reader, stderr io.Writer, paths []string, showProgress bool) ([]pricedBasket, error) {
	processor := app.NewProcessor()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Pricing baskets..."),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]pricedBasket, 0, len(paths))
	for _, path := range paths {
		path = config.ExpandPath(path)

		lines, err := readBasket(ctx, stdin, path)
		if err != nil {
			return nil, err
		}

		text, err := processor.ProcessLines(ctx, lines)
		if err != nil {
			return nil, common.NewUserError(fmt.Sprintf("Error processing input %s", path), err)
		}
		results = append(results, pricedBasket{source: path, receipt: text})

		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	return results, nil
}

func readBasket(ctx context.Context, stdin io.Reader, path string) ([]string, error) {
	var source io.Reader = stdin
	if path != config.StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open basket file: %w", err)
		}
		defer f.Close()
		source = f
	}

	lines, err := cli.NewLineReader(source).ReadLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read basket %s: %w", path, err)
	}
	return lines, nil
}

func printReceipts(w io.Writer, results []pricedBasket) error {
	p := presenter()
	showSource := len(results) > 1 && loadedConfig().Output.ShowInput

	for i, result := range results {
		if showSource {
			if err := writeLines(w, p.Heading(result.source+":")); err != nil {
				return err
			}
		}
		if err := writeLines(w, result.receipt); err != nil {
			return err
		}
		if i < len(results)-1 {
			if err := writeLines(w, ""); err != nil {
				return err
			}
		}
	}
	return nil
}
