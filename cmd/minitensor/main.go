// Package main provides the minitensor demonstration CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/minitensor/tensor"
)

const version = "v0.0.1-dev"

var errUnknownActivation = errors.New("unknown activation")

// config holds the demo's flag values.
type config struct {
	Fill        float64
	Activation  string
	Threshold   float64
	ShowVersion bool
}

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout)
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintf(out, "minitensor %s\n", version)
		return nil
	}

	log := klog.FromContext(ctx)
	log.Info("Starting minitensor demo", "fill", cfg.Fill, "activation", cfg.Activation)

	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, tensor.Shape{2, 2, 3})
	if err != nil {
		return fmt.Errorf("building x: %w", err)
	}
	x.SetName("x")

	y := tensor.FillLike(x, float32(cfg.Fill))
	y.SetName("y")

	printTensor(out, x)
	printTensor(out, y)

	sum, err := x.Add(y)
	if err != nil {
		return fmt.Errorf("adding %s and %s: %w", x.Name(), y.Name(), err)
	}
	sum.SetName(x.Name() + "+" + y.Name())
	log.V(2).Info("Computed sum", "shape", sum.Shape(), "size", sum.Size())

	applyActivation(sum, cfg)
	log.V(2).Info("Applied activation", "activation", cfg.Activation)

	printTensor(out, sum)
	return nil
}

// parseFlags parses args into a config and validates it.
func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("minitensor", flag.ContinueOnError)
	klog.InitFlags(fs)

	cfg := &config{}
	fs.Float64Var(&cfg.Fill, "fill", 30, "value for every element of y")
	fs.StringVar(&cfg.Activation, "activation", "none", "activation applied to x+y: none, relu, relu6, relux, sigmoid")
	fs.Float64Var(&cfg.Threshold, "threshold", 6, "upper bound used by -activation=relux")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && fs.Arg(0) == "version" {
		cfg.ShowVersion = true
		return cfg, nil
	}

	switch cfg.Activation {
	case "none", "relu", "relu6", "relux", "sigmoid":
	default:
		return nil, fmt.Errorf("%w %q", errUnknownActivation, cfg.Activation)
	}
	return cfg, nil
}

func applyActivation(t *tensor.Tensor, cfg *config) {
	switch cfg.Activation {
	case "relu":
		t.ReLU()
	case "relu6":
		t.ReLU6()
	case "relux":
		t.ReLUX(float32(cfg.Threshold))
	case "sigmoid":
		t.Sigmoid()
	}
}

func printTensor(out io.Writer, t *tensor.Tensor) {
	fmt.Fprintf(out, "%s = %v\n", t.Name(), t)
}
