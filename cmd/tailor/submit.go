package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/clipboard"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/session"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/spf13/cobra"
)

// errSubmissionFailed is returned after a Failed state has been rendered.
var errSubmissionFailed = errors.New("submission failed")

type submitOptions struct {
	resumePath string
	jobPath    string
	jobURL     string
	browser    bool
	roleTitle  string
	asJSON     bool
	copy       bool
}

func newSubmitCmd(a *app) *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Tailor a resume to a job description",
		Long: "Send a resume and a job description to the tailoring backend and print the tailored " +
			"resume, keyword analysis and ATS tips. Use - to read the resume or job description from stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resumePath, "resume", "r", "", "Path to the resume text file (- for stdin)")
	cmd.Flags().StringVarP(&opts.jobPath, "job", "j", "", "Path to the job description text file (- for stdin)")
	cmd.Flags().StringVar(&opts.jobURL, "job-url", "", "URL of a job posting to fetch the description from")
	cmd.Flags().BoolVar(&opts.browser, "browser", false, "Render a JavaScript-heavy --job-url posting in headless Chrome when little text is found")
	cmd.Flags().StringVar(&opts.roleTitle, "role", "", "Optional role title")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the final state as JSON")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the tailored resume to the clipboard on success")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url")

	return cmd
}

func runSubmit(cmd *cobra.Command, a *app, opts submitOptions) error {
	ctx := cmd.Context()
	log := logger.Logger.With().Str("command", "submit").Logger()

	if opts.resumePath == ingestion.StdinPath && opts.jobPath == ingestion.StdinPath {
		return fmt.Errorf("only one of --resume and --job can read from stdin")
	}

	// Missing inputs are left empty so the submission reports them.
	var resume string
	if opts.resumePath != "" {
		text, err := ingestion.ReadText(opts.resumePath, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resume = text
	}

	var jobDescription string
	switch {
	case opts.jobURL != "":
		text, meta, err := ingestion.IngestFromURL(ctx, opts.jobURL, &ingestion.URLOptions{UseBrowser: opts.browser})
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
		log.Info().Str("platform", meta.Platform).Int("chars", meta.Chars).Msg("job description fetched")
		jobDescription = text
	case opts.jobPath != "":
		text, err := ingestion.ReadText(opts.jobPath, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = text
	}

	client, err := tailor.NewClient(tailor.Config{
		BaseURL:      a.cfg.BaseURL(),
		Timeout:      a.cfg.Timeout(),
		StrictSchema: a.cfg.Strict(),
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	log.Debug().Str("endpoint", client.Endpoint()).Msg("submitting")

	st := session.New(client).Submit(ctx, resume, jobDescription, opts.roleTitle)

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if opts.asJSON {
		if err := printer.PrintJSON(st); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	} else {
		printer.PrintState(st)
	}

	if _, failed := st.(tailor.Failed); failed {
		return errSubmissionFailed
	}

	if opts.copy {
		copied, err := clipboard.CopyTailoredResume(st, a.clipboard)
		if err != nil {
			return err
		}
		if copied {
			fmt.Fprintln(cmd.ErrOrStderr(), "Tailored resume copied to clipboard.")
		}
	}

	return nil
}
