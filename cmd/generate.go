package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/encoder"
	"github.com/beka-birhanu/vinom-mazegen/render/ascii"
	"github.com/beka-birhanu/vinom-mazegen/render/picture"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatPNG  = "png"
)

type generateOptions struct {
	rows      int
	columns   int
	seed      int64
	speed     int
	animate   bool
	format    string
	output    string
	framesDir string
	cellSize  int
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze",
		Long: `Generates a maze of the given size and writes it in the chosen format.
With --animate every step is drawn in the terminal at the chosen speed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("speed") {
				opts.speed = a.cfg.DefaultSpeed
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, cmd, opts)
		},
	}

	flags := generateCmd.Flags()
	flags.IntVarP(&opts.rows, "rows", "r", 10, "Number of rows")
	flags.IntVarP(&opts.columns, "columns", "c", 10, "Number of columns")
	flags.Int64VarP(&opts.seed, "seed", "s", 0, "Random seed, 0 picks one from the clock")
	flags.IntVar(&opts.speed, "speed", 5, "Animation speed from 1 (slow) to 10 (fast), 0 for no delay")
	flags.BoolVarP(&opts.animate, "animate", "a", false, "Draw every step in the terminal")
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json, yaml, pb or png")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, stdout when empty")
	flags.StringVar(&opts.framesDir, "frames-dir", "", "Write one PNG per step into this directory")
	flags.IntVar(&opts.cellSize, "cell-size", picture.DefaultCellPixels, "Cell side in pixels for png output")

	return generateCmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts *generateOptions) error {
	// Resolve the encoder before spending time on generation.
	var enc i.Encoder
	switch opts.format {
	case formatText, formatPNG:
	default:
		var err error
		if enc, err = encoder.ForFormat(opts.format); err != nil {
			return err
		}
	}

	delay, err := service.DelayForSpeed(opts.speed)
	if err != nil {
		return err
	}

	genLogger := newLogger("GENERATOR", config.ColorCyan, cmd.ErrOrStderr())
	request := service.Request{
		Rows:    opts.rows,
		Columns: opts.columns,
		Seed:    opts.seed,
		Logger:  genLogger,
	}
	if opts.animate {
		request.Ticker = service.NewTicker(delay)
		request.Renderers = append(request.Renderers, ascii.New(cmd.ErrOrStderr(), ascii.WithClearScreen()))
	}
	if opts.framesDir != "" {
		if err := os.MkdirAll(opts.framesDir, 0o755); err != nil {
			return err
		}
		request.Renderers = append(request.Renderers, &picture.FrameRenderer{Dir: opts.framesDir, CellPixels: opts.cellSize})
	}

	result, err := service.Generate(ctx, request)
	if err != nil {
		if result != nil && errors.Is(err, context.Canceled) {
			genLogger.Warning(fmt.Sprintf("stopped after %d steps, writing the partial maze", result.Summary.Steps))
		} else {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeResult(out, result, opts, enc)
}

func writeResult(w io.Writer, result *service.Result, opts *generateOptions, enc i.Encoder) error {
	gen := result.Generator
	switch opts.format {
	case formatText:
		_, err := fmt.Fprintf(w, "%sseed %d, %d steps (%d advances, %d backtracks), %s\n",
			gen.Grid(), gen.Seed(), result.Summary.Steps, result.Summary.Advances, result.Summary.Backtracks, gen.Status())
		return err

	case formatPNG:
		img, err := picture.Image(gen.Grid(), gen.Current(), picture.Options{CellPixels: opts.cellSize})
		if err != nil {
			return err
		}
		return picture.EncodePNG(w, img)
	}

	body, err := enc.Marshal(result.Snapshot())
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}
