package main

import (
	"fmt"

	"github.com/milk9111/tilenav/ecs/entity"
	"github.com/milk9111/tilenav/prefabs"
	"github.com/spf13/cobra"
)

func PathCmd() *cobra.Command {
	var level, from, to, cost string
	c := &cobra.Command{
		Use:   "path",
		Short: "plan one path and print corridor, portals and waypoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVec(from)
			if err != nil {
				return err
			}
			goal, err := parseVec(to)
			if err != nil {
				return err
			}
			spec, err := prefabs.LoadNavigationSpec()
			if err != nil {
				return err
			}
			if cost != "" {
				spec.CostModel = cost
			}
			grid, nav, err := entity.LoadNavigation(spec, level, newLogger("path"))
			if err != nil {
				return err
			}

			plan, err := nav.Plan(start, goal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grid %dx%d tile %.0f origin %v\n", grid.Width(), grid.Height(), grid.TileSize(), grid.Origin())
			fmt.Fprintf(out, "corridor (%d cells, %d explored):", len(plan.Corridor), len(plan.Explored))
			for _, c := range plan.Corridor {
				fmt.Fprintf(out, " %s", c)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "portals (%d):\n", len(plan.Portals))
			for i, p := range plan.Portals {
				fmt.Fprintf(out, "  %2d left (%g,%g) right (%g,%g)\n", i, p.Left.X, p.Left.Y, p.Right.X, p.Right.Y)
			}
			fmt.Fprintf(out, "waypoints (%d):\n", len(plan.Waypoints))
			for _, w := range plan.Waypoints {
				fmt.Fprintf(out, "  (%g,%g)\n", w.X, w.Y)
			}
			return nil
		},
	}
	c.Flags().StringVar(&level, "level", "", "level file (defaults to navigation.yaml)")
	c.Flags().StringVar(&from, "from", "", "start point x,y")
	c.Flags().StringVar(&to, "to", "", "goal point x,y")
	c.Flags().StringVar(&cost, "cost", "", "octile or uniform")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
