package main

import (
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goendo/internal/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var (
	viewCollisionSurface string
	viewNoCollision      bool
	viewMetricsAddr      string
)

var viewCmd = &cobra.Command{
	Use:   "view [surface.stl]",
	Short: "Open the surface in the endoscopy viewer",
	Long: `Open the surface and navigate it with the keyboard:
  arrows   look around (pitch / azimuth by one degree)
  z / s    move forward / backward
  c        toggle collision detection
  esc      quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVar(&viewCollisionSurface, "collision-surface", "", "Separate STL used for collision queries")
	viewCmd.Flags().BoolVar(&viewNoCollision, "no-collision", false, "Start with collision detection disabled")
	viewCmd.Flags().StringVar(&viewMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9100)")
}

func runView(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if viewNoCollision {
		conf.Collision = false
	}
	if viewMetricsAddr != "" {
		conf.MetricsAddr = viewMetricsAddr
	}

	if conf.MetricsAddr != "" {
		serveMetrics(conf.MetricsAddr)
	}

	return app.Run(app.Options{
		SurfaceFile:   args[0],
		CollisionFile: viewCollisionSurface,
		Config:        conf,
	})
}

// serveMetrics exposes the Prometheus registry in the background. The server
// only reads metric values and never touches navigation state.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logs.WithTag("addr", addr).Info("starting metrics server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Warn(errors.New("metrics server failed").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()
}
