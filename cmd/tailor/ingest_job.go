package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/spf13/cobra"
)

func newIngestJobCmd() *cobra.Command {
	var (
		textFile, urlStr, outDir string
		useBrowser               bool
	)

	cmd := &cobra.Command{
		Use:   "ingest-job",
		Short: "Print the cleaned job description from a text file or URL",
		Long: "Ingest a job posting from either a text file or URL and print the cleaned text. " +
			"With --out, the text and its metadata are also written to that directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireOne("text-file", textFile, "url", urlStr); err != nil {
				return err
			}

			var (
				cleanedText string
				metadata    *ingestion.Metadata
				err         error
			)
			if textFile != "" {
				cleanedText, metadata, err = ingestion.IngestFromFile(textFile, cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to ingest from file: %w", err)
				}
			} else {
				cleanedText, metadata, err = ingestion.IngestFromURL(cmd.Context(), urlStr, &ingestion.URLOptions{UseBrowser: useBrowser})
				if err != nil {
					return fmt.Errorf("failed to ingest from URL: %w", err)
				}
			}

			if outDir != "" {
				if err := ingestion.WriteOutput(outDir, cleanedText, metadata); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), cleanedText)
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFile, "text-file", "t", "", "Path to text file containing the job description (- for stdin)")
	cmd.Flags().StringVarP(&urlStr, "url", "u", "", "URL to fetch the job posting from")
	cmd.Flags().BoolVar(&useBrowser, "browser", false, "Render JavaScript-heavy postings in headless Chrome when little text is found")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Optional output directory for the cleaned text and metadata")

	return cmd
}
