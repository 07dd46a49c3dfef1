// Command distribute partitions participants into the fewest balanced games,
// either as a one-shot command or as a NATS request-reply service.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/beeracademy/distribute"
	"github.com/beeracademy/distribute/internal/metrics"
	"github.com/beeracademy/distribute/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		capacity  int
		timeout   time.Duration
		separator string
	)

	cmd := &cobra.Command{
		Use:   "distribute [tokens...]",
		Short: "Partition participants into the fewest balanced games",
		Long: `Distribute partitions weighted participant groups into the fewest possible
fixed-capacity games, minimizing the spread between the fullest and emptiest
game. Join names with the group separator (e.g. "a=b=c") to keep them in the
same game.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := distribute.Config{
				Capacity:       capacity,
				SolveTimeout:   timeout,
				GroupSeparator: separator,
			}
			eng, err := distribute.New(&cfg)
			if err != nil {
				return err
			}

			res, err := eng.Distribute(cmd.Context(), args)
			if err != nil {
				return err
			}
			cmd.Print(res.Render())

			return nil
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "c", 6, "maximum participants per game")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "wall-clock budget for the search")
	cmd.Flags().StringVarP(&separator, "separator", "s", "=", "separator joining co-located names")

	cmd.AddCommand(newServeCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		natsURL     string
		subject     string
		queue       string
		metricsAddr string
		capacity    int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve partition requests over NATS request-reply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			nc, err := nats.Connect(natsURL)
			if err != nil {
				return fmt.Errorf("failed to connect to NATS at %s: %w", natsURL, err)
			}
			defer nc.Close()

			cfg := distribute.Config{Capacity: capacity, SolveTimeout: timeout}
			eng, err := distribute.New(&cfg,
				distribute.WithMetrics(metrics.NewPrometheus(nil, "distribute")))
			if err != nil {
				return err
			}

			svc, err := service.New(nc, eng, service.Config{Subject: subject, Queue: queue})
			if err != nil {
				return err
			}
			if err := svc.Start(); err != nil {
				return err
			}
			defer func() { _ = svc.Stop() }()

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
				}
			}()
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("serving %s (metrics on %s)\n", subject, metricsAddr)
			<-ctx.Done()

			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	cmd.Flags().StringVar(&subject, "subject", service.DefaultSubject, "subject to serve")
	cmd.Flags().StringVar(&queue, "queue", service.DefaultQueue, "queue group name")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "prometheus metrics listen address")
	cmd.Flags().IntVarP(&capacity, "capacity", "c", 6, "maximum participants per game")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "wall-clock budget per search")

	return cmd
}
