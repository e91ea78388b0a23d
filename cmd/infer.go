package cmd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/latticejs/tyinfer/callgraph"
	"github.com/latticejs/tyinfer/infer"
	"github.com/latticejs/tyinfer/internal/log"
	"github.com/latticejs/tyinfer/ir"
	"github.com/spf13/cobra"
)

var InferCmd = &cobra.Command{
	Use:          "infer [scenario]",
	Short:        "Run the type-inference pass over a built-in demo module",
	RunE:         runInfer,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	inferLogLevel *int
	dumpTypes     *bool
)

func init() {
	inferLogLevel = InferCmd.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	dumpTypes = InferCmd.Flags().BoolP("dump-types", "d", true, "print the inferred type of every instruction, parameter, and variable")
}

func runInfer(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*inferLogLevel))

	name := "all"
	if len(args) > 0 {
		name = args[0]
	}

	scenarios := demoScenarios()
	if name != "all" {
		s, ok := scenarios[name]
		if !ok {
			return fmt.Errorf("unknown scenario %q (known: %s)", name, scenarioNames(scenarios))
		}
		return runScenario(name, s)
	}

	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := runScenario(n, scenarios[n]); err != nil {
			return err
		}
	}
	return nil
}

func runScenario(name string, module *ir.Module) error {
	providers := callgraph.NewProviderFactory(module)
	changed, stats := infer.RunOnModuleWithStats(module, providers, log.DefaultLogger)
	fmt.Printf("=== %s (changed=%v, instructionsChanged=%d, uniqueStoreLoads=%d) ===\n",
		name, changed, stats.InstructionsChanged, stats.UniqueStoreLoads)
	if *dumpTypes {
		dumpModule(module)
	}
	return nil
}

func dumpModule(module *ir.Module) {
	for _, f := range module.Functions {
		fmt.Printf("func %s() %s\n", f.Name, f.ReturnType)
		for _, p := range f.Params {
			fmt.Printf("  param %s: %s\n", p.Name, p.Type())
		}
		for _, v := range f.Variables {
			fmt.Printf("  var %s: %s\n", v.Name, v.Type())
		}
		for _, b := range f.Blocks {
			fmt.Printf("  block %s:\n", b.Name)
			for _, instr := range b.Instrs {
				if instr.HasOutput() {
					fmt.Printf("    %s %s = %s\n", instr.Name, instr.Kind, instr.Type())
				} else {
					fmt.Printf("    %s %s\n", instr.Name, instr.Kind)
				}
			}
		}
	}
}

func scenarioNames(scenarios map[string]*ir.Module) string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
