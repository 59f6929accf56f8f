/*
Turnbake exports ML training datasets from directories of meshes: it bakes
a set of data maps for each mesh and renders a camera turnaround with every
map applied. This binary wires the exporter to the synthetic in-process
render host.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ovenlight/turnbake/engine"
	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/testbed"
)

func main() {
	configPath := flag.String("config", "turnbake.toml", "path to the configuration file")
	inputPath := flag.String("input", "", "mesh directory (overrides input.path)")
	outputPath := flag.String("output", "", "dataset directory (overrides output.path)")
	dryRun := flag.Bool("dry-run", true, "use the in-process synthetic render host")
	flag.Parse()

	// The synthetic host is the only one this binary links; attaching a real
	// render service happens through engine.New in a custom entry point.
	if !*dryRun {
		core.LogFatal("no external render host is configured in this build; run with -dry-run")
	}

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal(err.Error())
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	exporter, err := engine.New(cfg, testbed.NewSynthHost())
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := exporter.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		core.LogInfo("shutdown requested, finishing current mesh")
		cancel()
	}()

	// run export
	runErr := exporter.Run(ctx)
	if err := exporter.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if runErr != nil {
		core.LogFatal(runErr.Error())
	}
}
