package main

import (
	"os"

	"github.com/philipparndt/goendo/internal/replay"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	replayKeys             []string
	replayPosition         string
	replayFocal            string
	replayCollisionSurface string
	replayNoCollision      bool
	replayJSON             bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [surface.stl]",
	Short: "Run a key sequence without a window and report each pose",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringSliceVarP(&replayKeys, "keys", "k", nil, "Comma separated key symbols (Up,Down,Left,Right,z,s,Escape)")
	replayCmd.Flags().StringVar(&replayPosition, "position", "", "Initial camera position x,y,z (default: surface center)")
	replayCmd.Flags().StringVar(&replayFocal, "focal", "", "Initial focal point x,y,z (default: one unit down -Z)")
	replayCmd.Flags().StringVar(&replayCollisionSurface, "collision-surface", "", "Separate STL used for collision queries")
	replayCmd.Flags().BoolVar(&replayNoCollision, "no-collision", false, "Disable collision detection")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print the report as JSON")
	_ = replayCmd.MarkFlagRequired("keys")
}

func runReplay(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if replayNoCollision {
		conf.Collision = false
	}

	surface, collisionSurface, err := stl.ParseSurfaces(args[0], replayCollisionSurface)
	if err != nil {
		return err
	}

	camera, err := replay.Camera(surface, replayPosition, replayFocal)
	if err != nil {
		return err
	}

	steps, err := replay.Run(conf, camera, surface, collisionSurface, replayKeys)
	if err != nil {
		return err
	}

	if replayJSON {
		return replay.WriteJSON(os.Stdout, steps)
	}
	replay.WriteTable(os.Stdout, steps)
	return nil
}
