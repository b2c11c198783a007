package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dusk-indust/irvec/internal/config"
	"github.com/dusk-indust/irvec/internal/embed"
	"github.com/dusk-indust/irvec/internal/export"
	"github.com/dusk-indust/irvec/internal/ir"
	"github.com/dusk-indust/irvec/internal/mcptools"
	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Input    string
	Vocab    string
	Mode     string
	Level    string
	Function string
	GraphDB  string
	ServeMCP bool
	Addr     string
	Version  bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("irvec", flag.ContinueOnError)
	fs.StringVar(&flags.Input, "input", "", "path to the YAML module description")
	fs.StringVar(&flags.Vocab, "vocab", "", "path to the JSON vocabulary file")
	fs.StringVar(&flags.Mode, "mode", "triplets", "operation: triplets, embeddings or entities")
	fs.StringVar(&flags.Level, "level", "", "embedding granularity: inst, bb or func")
	fs.StringVar(&flags.Function, "function", "", "restrict the query to one function (raw name)")
	fs.StringVar(&flags.GraphDB, "graph-db", "", "persist extracted triplets into a KuzuDB at this path")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server")
	fs.StringVar(&flags.Addr, "addr", "localhost:8417", "listen address for -serve-mcp")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.Vocab == "" {
		flags.Vocab = cfg.VocabPath
	}
	if flags.Level == "" {
		flags.Level = cfg.Level
	}
	if flags.Level == "" {
		flags.Level = "func"
	}
	if flags.GraphDB == "" {
		flags.GraphDB = cfg.GraphDB
	}

	if flags.ServeMCP {
		return mcptools.RunMCPServer(context.Background(), mcptools.NewVecService(), flags.Addr)
	}

	if flags.Input == "" {
		return fmt.Errorf("-input is required")
	}

	m, err := ir.LoadModule(flags.Input)
	if err != nil {
		return err
	}

	t, err := tool.New(m)
	if err != nil {
		return err
	}

	mode := embed.Mode(cfg.Mode)
	if err := t.InitializeVocabulary(tool.Config{
		VocabPath: flags.Vocab,
		Weights:   cfg.Weights,
		Mode:      mode,
	}); err != nil {
		return fmt.Errorf("initialize vocabulary: %w", err)
	}

	switch flags.Mode {
	case "triplets":
		return runTriplets(t, flags)
	case "embeddings":
		return runEmbeddings(t, flags)
	case "entities":
		names, err := t.EntityMappings()
		if err != nil {
			return err
		}
		return export.WriteEntities(os.Stdout, names)
	default:
		return fmt.Errorf("unknown mode %q (want triplets, embeddings or entities)", flags.Mode)
	}
}

func runTriplets(t *tool.Tool, flags cliFlags) error {
	var res triplet.Result
	var err error
	if flags.Function != "" {
		res, err = t.Triplets(flags.Function)
	} else {
		res, err = t.ModuleTriplets()
	}
	if err != nil {
		return err
	}

	if flags.GraphDB != "" {
		if err := persistGraph(flags.GraphDB, t, res); err != nil {
			return fmt.Errorf("persist graph: %w", err)
		}
	}

	return export.WriteTriplets(os.Stdout, res)
}

func runEmbeddings(t *tool.Tool, flags cliFlags) error {
	switch flags.Level {
	case "inst":
		var list []tool.LabeledEmbedding
		var err error
		if flags.Function != "" {
			list, err = t.InstructionEmbeddings(flags.Function)
		} else {
			list, err = t.ModuleInstructionEmbeddings()
		}
		if err != nil {
			return err
		}
		return export.WriteLabeled(os.Stdout, list)
	case "bb":
		var list []tool.LabeledEmbedding
		var err error
		if flags.Function != "" {
			list, err = t.BlockEmbeddings(flags.Function)
		} else {
			list, err = t.ModuleBlockEmbeddings()
		}
		if err != nil {
			return err
		}
		return export.WriteLabeled(os.Stdout, list)
	case "func":
		if flags.Function != "" {
			fe, err := t.FunctionEmbedding(flags.Function)
			if err != nil {
				return err
			}
			return export.WriteFunctionEmbeddings(os.Stdout,
				map[string]tool.FunctionEmbedding{fe.Demangled: fe})
		}
		funcs, err := t.FunctionEmbeddings(context.Background())
		if err != nil {
			return err
		}
		return export.WriteFunctionEmbeddings(os.Stdout, funcs)
	default:
		return fmt.Errorf("unknown level %q (want inst, bb or func)", flags.Level)
	}
}
