// Command sketchdemo is a small host for the sketch engine: it builds a
// demo document, runs fills against it, and renders the result to PNG
// through gogpu/gg. It doubles as a diagnostic tool for face traces.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
)

var rootCmd = &cobra.Command{
	Use:   "sketchdemo",
	Short: "Demo host for the sketch planar-graph fill engine",
	Long: `sketchdemo builds a scripted drawing, performs click-to-fill
operations against it, and renders lines and fills to a PNG file.
The trace subcommand prints the diagnostics of a single fill attempt.`,
}

var (
	renderWidth  int
	renderHeight int
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the demo scene to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := buildScene()
		return renderScene(doc, renderWidth, renderHeight, renderOutput)
	},
}

var (
	traceX float64
	traceY float64
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print fill-trace diagnostics for a point in the demo scene",
	Run: func(cmd *cobra.Command, args []string) {
		doc := buildScene()
		res := doc.FillAt(traceX, traceY, sketch.Hex("4488cc"))
		fmt.Printf("closed:    %v\n", res.Closed)
		fmt.Printf("reason:    %s\n", res.Reason)
		fmt.Printf("steps:     %d\n", res.Steps)
		fmt.Printf("states:    %d\n", res.UniqueStates)
		fmt.Printf("fanout:    %d\n", res.MaxFanOut)
		if res.Closed {
			fmt.Printf("area:      %.1f\n", res.Area)
			fmt.Printf("boundary:  %d points\n", len(res.Boundary))
			for _, p := range res.Boundary {
				fmt.Printf("  (%.1f, %.1f)\n", p.X, p.Y)
			}
		}
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 800, "image width")
	renderCmd.Flags().IntVar(&renderHeight, "height", 600, "image height")
	renderCmd.Flags().StringVar(&renderOutput, "output", "sketch.png", "output file")
	traceCmd.Flags().Float64Var(&traceX, "x", 400, "query point x")
	traceCmd.Flags().Float64Var(&traceY, "y", 300, "query point y")
	rootCmd.AddCommand(renderCmd, traceCmd)
}

// buildScene draws a frame, a triangle and a few crossing strokes, fills
// two regions, and trims the leftover overhangs.
func buildScene() *sketch.Document {
	doc := sketch.NewDocument()

	doc.AddFrame(100, 100, 700, 100, 700, 500, 100, 500)
	doc.AddPolyline([]sketch.Point{
		sketch.Pt(200, 400),
		sketch.Pt(400, 150),
		sketch.Pt(600, 400),
		sketch.Pt(200, 400),
	})
	doc.AddLine(100, 300, 700, 300)
	doc.AddLine(650, 450, 780, 560) // dangling stroke, trimmed below

	doc.FillAt(400, 350, sketch.Hex("cc5544"))
	doc.FillAt(150, 150, sketch.Hex("44779988"))
	doc.TrimOverhangs()

	return doc
}

func renderScene(doc *sketch.Document, width, height int, output string) error {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	for _, f := range doc.Fills() {
		if len(f.Points) < 3 {
			continue
		}
		dc.SetRGBA(f.Color.R, f.Color.G, f.Color.B, f.Color.A)
		dc.MoveTo(f.Points[0].X, f.Points[0].Y)
		for _, p := range f.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(2)
	for _, l := range doc.Lines() {
		dc.MoveTo(l.X1, l.Y1)
		dc.LineTo(l.X2, l.Y2)
		dc.Stroke()
	}

	return dc.SavePNG(output)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
