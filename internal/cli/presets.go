package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"penrose-tiling/pkg/pentagrid"
)

// presetDescriptions names the tiles meeting at each configuration's vertex.
var presetDescriptions = map[pentagrid.Preset]string{
	pentagrid.Ace:   "two kites and a dart",
	pentagrid.Deuce: "two kites and two darts",
	pentagrid.Sun:   "five kites",
	pentagrid.Star:  "five darts",
	pentagrid.Jack:  "three kites and two darts",
	pentagrid.Queen: "four kites and a dart",
	pentagrid.King:  "two kites and three darts",
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the vertex configurations a tiling can grow from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, styleTitle.Render("Vertex configurations"))
			for _, p := range pentagrid.Presets() {
				plane := p.Plane()
				var forced []string
				for i := 0; i < pentagrid.N; i++ {
					forced = append(forced, fmt.Sprint(len(plane.Sequence(i).ForcedBars(-2, 2))))
				}
				fmt.Fprintf(w, "  %s %s %s\n",
					styleName.Render(p.String()),
					presetDescriptions[p],
					styleDim.Render("(forced bars near origin: "+strings.Join(forced, " ")+")"))
			}
			return nil
		},
	}
}
