// Command halinspect loads a robot descriptor and reports the resource
// interfaces a HAL built from it exposes. It can also dump a shared-memory
// state file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/halkit/cmd/halinspect/logger"
	"github.com/joshuapare/halkit/hal/shm"
	"github.com/joshuapare/halkit/internal/descriptor"
)

var version = "dev"

func main() {
	args := os.Args[1:]
	var (
		debugMode  bool
		showClaims bool
		statePath  string
	)

	// Extract flags (before positional args)
	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--debug", "-d":
			debugMode = true
		case "--claims", "-c":
			showClaims = true
		case "--state", "-s":
			i++
			if i == len(args) {
				fmt.Fprintln(os.Stderr, "Error: --state needs a file argument")
				os.Exit(1)
			}
			statePath = args[i]
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("halinspect %s\n", version)
			os.Exit(0)
		default:
			filteredArgs = append(filteredArgs, args[i])
		}
	}

	// Initialize logger (must be before any logging calls)
	logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	})

	if statePath != "" {
		logger.Info("dumping state file", "path", statePath)
		if err := dumpState(statePath); err != nil {
			logger.Error("state dump failed", "path", statePath, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	descPath := filteredArgs[0]
	logger.Info("starting halinspect", "descriptor", descPath, "debug", debugMode)

	robot, err := descriptor.ParseFile(descPath)
	if err != nil {
		logger.Error("descriptor parse failed", "path", descPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := build(robot)
	if err != nil {
		logger.Error("building interfaces failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d joint(s), %d sensor(s)\n", descPath, len(robot.Joints), len(robot.Sensors))
	printInterfaces(r)

	if showClaims {
		if err := printClaims(r); err != nil {
			logger.Error("claim walk failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func dumpState(path string) error {
	vals, err := shm.Dump(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d slot(s)\n", path, len(vals))
	for i, v := range vals {
		fmt.Printf("  [%3d] %g\n", i, v)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: halinspect [--debug] [--claims] <robot.desc>")
	fmt.Fprintln(os.Stderr, "       halinspect --state <state-file>")
	fmt.Fprintln(os.Stderr, "Try 'halinspect --help' for details.")
}

func printHelp() {
	fmt.Println("halinspect - inspect the resource interfaces of a robot descriptor")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  halinspect [flags] <robot.desc>")
	fmt.Println("  halinspect --state <state-file>")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -c, --claims        fetch every command handle and report the claims left behind")
	fmt.Println("  -s, --state FILE    dump a shared-memory state file instead of a descriptor")
	fmt.Println("  -d, --debug         log debug output to stderr")
	fmt.Println("  -h, --help          show this help")
	fmt.Println("  -v, --version       show version")
}
