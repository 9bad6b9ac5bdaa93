package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/publish"
)

func buildCmd(opts *globalOptions) *cobra.Command {
	var (
		output      string
		target      string
		concurrency int
		clean       bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page",
		Long: `Render every page in the pages directory and store the results.

The disk target writes <output>/<page>.html. The s3 target puts the
documents in the bucket from markup.json, using credentials from
AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  markup build
  markup build --output=public
  markup build --target=s3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts, false)
			if err != nil {
				return err
			}
			if output != "" {
				p.cfg.Build.Output = output
			}
			if target != "" {
				p.cfg.Build.Target = target
				if err := p.cfg.Validate(); err != nil {
					return err
				}
			}

			var sink publish.Sink
			switch p.cfg.Build.Target {
			case config.TargetS3:
				s3cfg := p.cfg.S3
				client := publish.NewS3Client(publish.S3Config{Region: s3cfg.Region, Endpoint: s3cfg.Endpoint})
				sink = publish.NewS3Sink(client, s3cfg.Bucket, s3cfg.Prefix)
			default:
				dir := p.cfg.OutputPath()
				if clean {
					if err := os.RemoveAll(dir); err != nil {
						return errors.New("E150").Wrap(err)
					}
				}
				sink = publish.NewDiskSink(dir)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := publish.Build(ctx, p.site(), sink, publish.BuildOptions{
				Concurrency: concurrency,
				Logger:      p.logger,
			})
			if res != nil {
				out := cmd.OutOrStdout()
				for _, key := range res.Keys {
					info(out, "%s", key)
				}
				if err == nil {
					success(out, "Built %d pages (%d bytes) in %s", len(res.Keys), res.Bytes, res.Duration.Round(1e6))
				}
			}
			if err != nil {
				return errors.New("E150").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from markup.json)")
	cmd.Flags().StringVar(&target, "target", "", "Build target: disk or s3 (default from markup.json)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "Pages rendered at once (default: number of CPUs)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory first")

	return cmd
}
