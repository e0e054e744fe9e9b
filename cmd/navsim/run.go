package main

import (
	"fmt"

	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/sim"
	"github.com/spf13/cobra"
)

func RunCmd() *cobra.Command {
	var (
		level, cost, scenario, agents string
		ticks                         int
		dt                            float64
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "run a headless fixed-step simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			spawns, err := parseAgents(agents)
			if err != nil {
				return err
			}
			s, err := sim.New(sim.Config{
				Level:     level,
				CostModel: cost,
				Scenario:  scenario,
				Agents:    spawns,
				DT:        dt,
				Logger:    newLogger("run"),
			})
			if err != nil {
				return err
			}

			arrivals := 0
			for i := 0; i < ticks; i++ {
				for _, ev := range s.Step() {
					if ev.Type == ecs.EventArrived {
						arrivals++
					}
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d ticks, %d arrivals\n", ticks, arrivals)
			for i, e := range s.Agents() {
				a, ok := ecs.Get(s.World(), e, component.AgentComponent.Kind())
				if !ok {
					continue
				}
				fmt.Fprintf(out, "agent %d %s pos (%.2f,%.2f) speed %.2f waypoints %d\n",
					i, a.Name, a.Position.X, a.Position.Y, a.Speed(), a.Order.Len())
			}
			return nil
		},
	}
	c.Flags().StringVar(&level, "level", "", "level file (defaults to navigation.yaml)")
	c.Flags().StringVar(&cost, "cost", "", "octile or uniform")
	c.Flags().StringVar(&scenario, "scenario", "patrol", "tengo scenario script")
	c.Flags().StringVar(&agents, "agents", "", "spawn points x,y;x,y")
	c.Flags().IntVar(&ticks, "ticks", 600, "number of fixed steps")
	c.Flags().Float64Var(&dt, "dt", common.FixedDT, "step length in seconds")
	return c
}
