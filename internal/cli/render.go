package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"
	"github.com/spf13/cobra"

	"penrose-tiling/internal/config"
	"penrose-tiling/internal/render"
	"penrose-tiling/internal/store"
	"penrose-tiling/pkg/errors"
	"penrose-tiling/pkg/pentagrid"
	"penrose-tiling/pkg/tiling"
)

func newRenderCmd(a *app) *cobra.Command {
	var bounds string

	cmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "Grow a tiling and write it as SVG",
		Long:  `Grow a tiling from a vertex configuration (default king) over the given bounds and write it as SVG. With --db the tiling is looked up in, and saved to, a SQLite catalogue.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if len(args) == 1 {
				cfg.Preset = args[0]
			}
			if err := applyRenderFlags(cmd, &cfg, bounds); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output SVG path (default <preset>.svg)")
	cmd.Flags().Float64("scale", 0, "SVG units per plane unit")
	cmd.Flags().StringVar(&bounds, "bounds", "", "plane bounds as min_x,min_y,max_x,max_y")
	cmd.Flags().String("db", "", "SQLite tiling catalogue")
	cmd.Flags().Int("max-iterations", 0, "give up after this many forcing rounds")

	return cmd
}

// applyRenderFlags overrides cfg with the flags given on the command line.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, bounds string) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("scale") {
		cfg.Scale, _ = flags.GetFloat64("scale")
	}
	if flags.Changed("db") {
		cfg.Store.Path, _ = flags.GetString("db")
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("bounds") {
		b, err := parseBounds(bounds)
		if err != nil {
			return err
		}
		cfg.Bounds = b
	}
	return nil
}

func parseBounds(s string) (config.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return config.Bounds{}, errors.New(errors.ErrCodeInvalidBounds,
			"bounds %q: want min_x,min_y,max_x,max_y", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return config.Bounds{}, errors.Wrap(errors.ErrCodeInvalidBounds, err, "bounds %q", s)
		}
		v[i] = f
	}
	return config.Bounds{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}, nil
}

// tilingResult is what render writes, however it was obtained.
type tilingResult struct {
	tiles      []render.Tile
	iterations int
	cached     bool
}

func runRender(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	preset, err := pentagrid.ParsePreset(cfg.Preset)
	if err != nil {
		return err
	}
	cfg.Preset = preset.String()
	bounds := cfg.Bounds.Rect()

	var cat *store.Store
	if cfg.Store.Path != "" {
		cat, err = store.Open(ctx, cfg.Store.Path)
		if err != nil {
			return err
		}
		defer cat.Close()
	}

	res, err := obtainTiling(ctx, logger, cat, preset, bounds, cfg.MaxIterations)
	if err != nil {
		return err
	}

	out := cfg.OutputPath()
	if err := writeSVG(out, res.tiles, bounds, cfg.Scale); err != nil {
		return err
	}

	darts, kites := 0, 0
	for _, t := range res.tiles {
		if t.Kind == render.KindDart {
			darts++
		} else {
			kites++
		}
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %s %s %s", styleTitle.Render(preset.String()), iconArrow, out)
	printDetail(w, "darts", styleDart.Render(strconv.Itoa(darts)))
	printDetail(w, "kites", styleKite.Render(strconv.Itoa(kites)))
	if res.cached {
		printDetail(w, "source", styleDim.Render("catalogue"))
	} else {
		printDetail(w, "iterations", styleNumber.Render(strconv.Itoa(res.iterations)))
	}
	return nil
}

// obtainTiling loads the tiling from the catalogue when it has one, otherwise
// grows it and saves it there.
func obtainTiling(ctx context.Context, logger *log.Logger, cat *store.Store, preset pentagrid.Preset, bounds geom.Rect, maxIterations int) (tilingResult, error) {
	key := store.Key(preset.String(), bounds)
	if cat != nil {
		rec, ok, err := cat.Load(ctx, key)
		if err != nil {
			return tilingResult{}, err
		}
		if ok {
			logger.Info("loaded tiling from catalogue", "preset", preset, "key", key[:12])
			return tilingResult{tiles: rec.Tiles, iterations: rec.Iterations, cached: true}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return tilingResult{}, err
	}

	prog := newProgress(logger)
	t := tiling.New(preset.Plane(), bounds,
		tiling.WithLogger(logger),
		tiling.WithMaxIterations(maxIterations))
	ml, err := t.Compute()
	if err != nil {
		return tilingResult{}, err
	}
	prog.done("grew tiling", "preset", preset, "iterations", t.Iterations())

	res := tilingResult{tiles: render.Tiles(ml), iterations: t.Iterations()}
	if cat != nil {
		if _, err := cat.Save(ctx, store.Record{
			Key:        key,
			Preset:     preset.String(),
			Bounds:     bounds,
			Iterations: res.iterations,
			Tiles:      res.tiles,
		}); err != nil {
			return tilingResult{}, err
		}
		logger.Debug("saved tiling", "key", key[:12])
	}
	return res, nil
}

func writeSVG(path string, tiles []render.Tile, bounds geom.Rect, scale float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "create %s", path)
	}
	if err := render.Document(f, tiles, bounds, scale); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", path)
	}
	return nil
}
