package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/teeform/internal/config"
	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
)

type submitOptions struct {
	Height string
	Weight string
	Build  string
	Text   string
	Image  string
}

var errInvalidCustomization = errors.New("customization is invalid")

func newSubmitCmd(root *rootFlags) *cobra.Command {
	defaults := customizer.InputFrom(customizer.Defaults())
	opts := submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit a customization without the interactive form",
		Example: `  teeform submit --height 182 --weight 75 --build lean --text $'GO\nTEAM'
  teeform submit --image ./logo.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Height, "height", defaults.Height, fmt.Sprintf("Height in cm (%d-%d)", customizer.MinHeight, customizer.MaxHeight))
	cmd.Flags().StringVar(&opts.Weight, "weight", defaults.Weight, fmt.Sprintf("Weight in kg (%d-%d)", customizer.MinWeight, customizer.MaxWeight))
	cmd.Flags().StringVar(&opts.Build, "build", string(defaults.Build), "Body build: lean, regular, athletic or big")
	cmd.Flags().StringVar(&opts.Text, "text", "", fmt.Sprintf("Text printed on the shirt (at most %d lines)", customizer.MaxTextLines))
	cmd.Flags().StringVar(&opts.Image, "image", "", "Path to a design image")

	return cmd
}

func runSubmit(ctx context.Context, out, errOut io.Writer, cfg *config.Config, opts submitOptions) error {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        errOut,
		Component:     "submit",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if lines := customizer.LineCount(opts.Text); lines > customizer.MaxTextLines {
		fmt.Fprintf(errOut, "warning: text has %d lines; only the first %d are kept\n", lines, customizer.MaxTextLines)
	}

	build, err := customizer.ParseBuild(opts.Build)
	if err != nil {
		// Reported by Parse together with the other field errors.
		build = customizer.Build(opts.Build)
	}

	data, err := customizer.Parse(customizer.Input{
		Height: opts.Height,
		Weight: opts.Weight,
		Build:  build,
		Text:   opts.Text,
	})
	if err != nil {
		var fieldErrs customizer.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				fmt.Fprintf(errOut, "  %s: %s\n", fe.Field, fe.Message)
			}
			return errInvalidCustomization
		}
		return err
	}

	var img *imageload.Image
	if opts.Image != "" {
		path, ok := imageload.CleanPath(opts.Image)
		if !ok {
			return fmt.Errorf("invalid image path %q", opts.Image)
		}
		loader := imageload.NewLoader(log, imageload.Options{PreviewWidth: cfg.Preview.Width})
		img, err = loader.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
	}

	submitter := submit.NewLogSubmitter(log, cfg.Submit.Delay)
	receipt, err := submitter.Submit(ctx, submit.Submission{Form: data, Image: img, SubmittedAt: time.Now()})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Customization saved via %s\n", receipt.Submitter)
	fmt.Fprintf(out, "  height: %d cm\n  weight: %d kg\n  build:  %s\n", data.Height, data.Weight, data.Build.Label())
	if data.Text != "" {
		fmt.Fprintf(out, "  text:   %s\n", strings.ReplaceAll(data.Text, "\n", " / "))
	}
	if img != nil {
		fmt.Fprintf(out, "  image:  %s (%s, %s)\n", img.Name, img.MIME, imageload.HumanSize(img.Size))
	}
	return nil
}
