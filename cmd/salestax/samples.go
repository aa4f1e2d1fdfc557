package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/salestax/internal/app"
	"github.com/Veraticus/salestax/internal/common"
	"github.com/spf13/cobra"
)

func samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Print receipts for the built-in sample baskets",
		Long: `Run the three reference baskets through the calculator and print each
input followed by its receipt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSamples(cmd, app.SampleInputs())
		},
	}
}

func runSamples(cmd *cobra.Command, samples []app.Sample) error {
	out := cmd.OutOrStdout()
	p := presenter()
	cfg := loadedConfig()
	processor := app.NewProcessor()

	if err := writeLines(out, p.Title("Sales Tax Calculator"), ""); err != nil {
		return err
	}

	for i, sample := range samples {
		n := i + 1
		if cfg.Output.ShowInput {
			if err := writeLines(out, p.Heading(fmt.Sprintf("Input %d:", n)), p.Input(sample.Input), ""); err != nil {
				return err
			}
		}

		body, err := processor.Process(cmd.Context(), sample.Input)
		if err != nil {
			body = p.Error(common.NewUserError("Error processing input", err).Error())
		}

		if err := writeLines(out, p.Heading(fmt.Sprintf("Output %d:", n)), body, ""); err != nil {
			return err
		}
	}

	return nil
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
