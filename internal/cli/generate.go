package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/backgen/backgen/pkg/digest"
	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/pipeline"
	"github.com/backgen/backgen/pkg/raster"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		id         string
		configPath string
		output     string
		blurOut    string
		withDigest bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a background image",
		Long: `Generate a background image from a seed and an optional configuration
document.

The seed (--id) drives every random decision of the generation: the same
seed with the same configuration always produces the same image. When no
seed is given, one is derived from the current time of day as
hour*100+minute, so a machine regenerating its wallpaper gets a new
image every minute and the same image on re-runs within one.

The output extension selects the format: .svg writes the vector
document, .png rasterizes it. With --digest the blurhash digest is
printed and its blurred expansion is written next to the artifact
(override the destination with --blur). Results are cached locally for
faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, timeOfDay, err := resolveSeed(id)
			if err != nil {
				return err
			}
			format, err := formatForPath(output)
			if err != nil {
				return err
			}
			if err := checkDestination(output); err != nil {
				return err
			}
			if withDigest {
				if blurOut == "" {
					blurOut = blurPathFor(output)
				}
				if err := checkDestination(blurOut); err != nil {
					return err
				}
			}
			opts := pipeline.Options{
				Seed:       seed,
				TimeOfDay:  timeOfDay,
				ConfigPath: configPath,
				Formats:    []string{format},
				WithDigest: withDigest,
				Refresh:    refresh,
				Logger:     c.Logger,
			}
			return c.runGenerate(cmd.Context(), opts, output, blurOut, noCache)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "generation seed (default: derived from time of day)")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration document (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "background.svg", "output file (.svg or .png)")
	cmd.Flags().StringVar(&blurOut, "blur", "", "blur preview file (default: derived from --output)")
	cmd.Flags().BoolVar(&withDigest, "digest", false, "print the blurhash digest and write the blur preview")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even when cached")

	return cmd
}

// runGenerate executes the pipeline and writes the artifact, followed by
// the blur preview when the digest was requested.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output, blurOut string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	sp := startSpinner(ctx, opts.Seed)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		sp.Fail("Generation failed")
		return err
	}
	sp.Done()

	data := result.Artifacts[opts.Formats[0]]
	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "writing %s", output)
	}

	printSuccess("Generated seed %d", opts.Seed)
	printFile(output)

	if opts.WithDigest {
		if err := writeBlur(result, blurOut); err != nil {
			return err
		}
		printFile(blurOut)
		printKeyValue("digest", result.Digest)
	}
	printStats(result.Stats.TileCount, result.Stats.RegionCount, result.CacheInfo.ArtifactHit)
	return nil
}

// writeBlur expands the digest into its blurred counterpart, sized like
// the generated frame, and writes it to the preview destination.
func writeBlur(result *pipeline.Result, path string) error {
	img, err := digest.Preview(result.Digest, result.Cfg.Frame.W, result.Cfg.Frame.H, digest.DefaultPunch)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "writing %s", path)
	}
	defer f.Close()
	return raster.EncodePNG(f, img)
}

// resolveSeed parses the --id flag, deriving the seed from the wall
// clock when it is empty. The time projection used for span matching is
// the seed itself in both cases.
func resolveSeed(id string) (seed, timeOfDay uint64, err error) {
	if id == "" {
		now := time.Now()
		seed = uint64(now.Hour()*100 + now.Minute())
		return seed, seed, nil
	}
	seed, perr := strconv.ParseUint(id, 10, 64)
	if perr != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidSeed, "invalid seed %q: expected an unsigned integer", id)
	}
	return seed, seed, nil
}
