// Command nesgo loads an iNES ROM and runs it on the 6502 interpreter, or
// drives the package's integration-test harness over a directory of raw
// 6502 binaries.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"nesgo/cpu"
	"nesgo/rom"
)

var binPattern = regexp.MustCompile(`\.bin$`)

// defaultIntegrationResultsDir is where the legacy -i/--integration flag
// writes its .memdump files, one per input program.
const defaultIntegrationResultsDir = "integration_tests_results"

func main() {
	app := &cli.App{
		Name:    "nesgo",
		Usage:   "a MOS 6502 interpreter for the NES",
		Version: "v0.0.1",
		Commands: []*cli.Command{
			runCommand,
			debugCommand,
			integrationCommand,
		},
		// -i/--integration is carried over from the original tool's single
		// boolean flag, mapped onto the integration subcommand so existing
		// invocations keep working.
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "integration",
				Aliases: []string{"i"},
				Usage:   "run the integration-test harness against integration_tests/",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("integration") {
				return runIntegrationTests("integration_tests", defaultIntegrationResultsDir)
			}
			return cli.ShowAppHelp(c)
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "load an iNES ROM and run it to completion",
	ArgsUsage: "<rom-file>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("nesgo run: missing <rom-file>", 1)
		}

		c6502, err := loadROM(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		c6502.Run()
		fmt.Println(c6502.DumpRegisters())
		return nil
	},
}

var debugCommand = &cli.Command{
	Name:      "debug",
	Usage:     "load an iNES ROM and step it in an interactive TUI",
	ArgsUsage: "<rom-file>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("nesgo debug: missing <rom-file>", 1)
		}

		c6502, err := loadROM(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		c6502.Debug()
		return nil
	},
}

var integrationCommand = &cli.Command{
	Name:  "integration",
	Usage: "run every *.bin program under a directory and optionally dump memory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "directory of *.bin test programs",
			Value:   "integration_tests",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "directory to write .memdump files into; empty skips dumping",
		},
	},
	Action: func(c *cli.Context) error {
		return runIntegrationTests(c.String("dir"), c.String("out"))
	},
}

// loadROM reads path, choosing between a raw 6502 binary (loaded at 0x8000,
// the integration-test convention) and an iNES image based on its magic
// bytes.
func loadROM(path string) (*cpu.Cpu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nesgo: %w", err)
	}

	if len(data) >= 4 && string(data[:3]) == "NES" {
		f, err := rom.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("nesgo: %w", err)
		}
		c6502 := cpu.NewCpu(nil)
		if err := rom.Load(f, c6502); err != nil {
			return nil, fmt.Errorf("nesgo: %w", err)
		}
		return c6502, nil
	}

	return cpu.NewCpu(data), nil
}

// runIntegrationTests runs every *.bin file in dir to completion, printing
// each file's path as it starts and, when outDir is non-empty, writing a full
// memory dump of each into outDir as <name>.memdump.
func runIntegrationTests(dir, outDir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("nesgo: integration test directory: %w", err)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("nesgo: %w", err)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !binPattern.MatchString(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		program, err := os.ReadFile(path)
		if err != nil {
			log.Printf("nesgo: skipping %s: %v", path, err)
			continue
		}

		fmt.Printf("running %s\n", path)
		c6502 := cpu.NewCpu(program)
		c6502.Run()

		if outDir != "" {
			name := strings.TrimSuffix(entry.Name(), ".bin")
			dumpPath := filepath.Join(outDir, name+".memdump")
			if err := c6502.DumpMemoryToFile(0x0000, 0xFFFF, dumpPath); err != nil {
				log.Printf("nesgo: failed to write %s: %v", dumpPath, err)
			}
		}
	}
	return nil
}
