package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goendo/internal/replay"
	"github.com/philipparndt/goendo/pkg/analysis"
	"github.com/philipparndt/goendo/pkg/locator"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a surface and its spatial index",
	Long:  "Show cell count, bounds, edge statistics and the shape of the cell locator built over the surface.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Print the report as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	filename := args[0]
	model, err := stl.Parse(filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeSurface(model, locator.New(model))
	if infoJSON {
		return replay.WriteJSON(os.Stdout, result)
	}

	fmt.Println("Surface Information")
	fmt.Println("===================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Cells:")
	fmt.Printf("  Triangles: %d\n", result.CellCount)
	fmt.Printf("  Degenerate: %d\n", result.DegenerateCells)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Printf("  Size: %s\n\n", analysis.FormatVector(result.Dimensions))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Println("Cell Locator:")
	fmt.Printf("  Nodes: %d\n", result.Locator.Nodes)
	fmt.Printf("  Leaves: %d\n", result.Locator.Leaves)
	fmt.Printf("  Depth: %d\n", result.Locator.Depth)
	return nil
}
