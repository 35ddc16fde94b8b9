package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"penrose-tiling/internal/store"
	"penrose-tiling/pkg/errors"
)

func newCatalogueCmd(a *app) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "List the tilings stored in a SQLite catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Store.Path
			if cmd.Flags().Changed("db") {
				path = db
			}
			if path == "" {
				return errors.New(errors.ErrCodeInvalidConfig, "no catalogue given (use --db or [store] path)")
			}

			ctx := cmd.Context()
			cat, err := store.Open(ctx, path)
			if err != nil {
				return err
			}
			defer cat.Close()

			records, err := cat.List(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d stored tilings", len(records))))
			for _, r := range records {
				b := r.Bounds
				fmt.Fprintf(w, "  %s %s %s %s\n",
					styleName.Render(r.Preset),
					fmt.Sprintf("(%g, %g)-(%g, %g)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y),
					styleNumber.Render(fmt.Sprintf("%d iterations", r.Iterations)),
					styleDim.Render(r.Key[:12]+"  "+r.CreatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&db, "db", "", "SQLite tiling catalogue")
	return cmd
}
