package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/Arun1457/olympics-dashboard/internal/adapters/http/api"
	"github.com/Arun1457/olympics-dashboard/internal/adapters/http/site"
	"github.com/Arun1457/olympics-dashboard/internal/adapters/http/swagger"
	app "github.com/Arun1457/olympics-dashboard/internal/app"
	"github.com/Arun1457/olympics-dashboard/internal/config"
	"github.com/Arun1457/olympics-dashboard/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("OLY_ADDR", ":8080")
			_ = os.Setenv("OLY_DEFAULT_TOP_N", "5")
			_ = os.Setenv("OLY_HISTOGRAM_BINS", "20")
			defer func() {
				_ = os.Unsetenv("OLY_ADDR")
				_ = os.Unsetenv("OLY_DEFAULT_TOP_N")
				_ = os.Unsetenv("OLY_HISTOGRAM_BINS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultTopN, convey.ShouldEqual, 5)
				convey.So(cfg.HistogramBins, convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithDataFiles("athletes.csv", "regions.csv"),
					app.WithDefaultTopN(5),
					app.WithMaxTopLimit(50),
					app.WithViewCacheSize(256),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop when the context ends", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing service metrics updater", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then it should stop when the context ends", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startServiceMetricsUpdater(ctx, svc)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When testing full application setup", func() {
			_ = os.Setenv("OLY_ADDR", ":8080")
			defer func() { _ = os.Unsetenv("OLY_ADDR") }()

			convey.Convey("Then all components should wire together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				// Create the service without starting it; Start would
				// try to load the source files from disk.
				svc := app.New(
					app.WithDataFiles(cfg.AthletesCSV, cfg.RegionsCSV),
					app.WithDefaultTopN(cfg.DefaultTopN),
					app.WithMaxTopLimit(cfg.MaxTopLimit),
					app.WithViewCacheSize(cfg.ViewCacheSize),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)

				mux := http.NewServeMux()
				convey.So(mux, convey.ShouldNotBeNil)

				site.Register(ctx, mux)
				swagger.Register(ctx, mux)
				server.Register(ctx, mux)

				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("OLY_ADDR", "")
			defer func() { _ = os.Unsetenv("OLY_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with invalid options", func() {
			convey.Convey("Then out-of-range values fall back to defaults", func() {
				svc := app.New(
					app.WithDefaultTopN(0),
					app.WithMaxTopLimit(-1),
					app.WithViewCacheSize(0),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				stats := svc.GetStats()
				convey.So(stats, convey.ShouldNotBeNil)
				convey.So(stats["started"], convey.ShouldBeFalse)
			})
		})
	})
}

func TestMainApplicationResourceCleanup(t *testing.T) {
	convey.Convey("Given main application resource cleanup", t, func() {
		convey.Convey("When testing service creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then stats should be available without starting", func() {
				stats := svc.GetStats()
				convey.So(stats, convey.ShouldNotBeNil)
				convey.So(stats["started"], convey.ShouldBeFalse)
			})
		})

		convey.Convey("When testing multiple service creation cycles", func() {
			convey.Convey("Then multiple services should be created successfully", func() {
				for i := 0; i < 3; i++ {
					svc := app.New()
					convey.So(svc, convey.ShouldNotBeNil)

					stats := svc.GetStats()
					convey.So(stats, convey.ShouldNotBeNil)
				}
			})
		})
	})
}
