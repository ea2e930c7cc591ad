package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	flag "github.com/spf13/pflag"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/graph"
	agentmodel "github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	"github.com/Chative-core-poc-v1/inventory/internal/core"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/generator"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/repo"
	"github.com/Chative-core-poc-v1/inventory/pkg/clock"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
	pkgredis "github.com/Chative-core-poc-v1/inventory/pkg/redis"
)

// AppConfig defines all configurable parameters of the generator,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string           `envconfig:"LOG_LEVEL"`

	// Infrastructure
	Redis pkgredis.Config

	// Inventory
	Inventory  model.InventoryConfig
	Promotions model.PromotionConfig

	// Agent configs
	Agent  agentmodel.AgentConfig
	Prompt agentmodel.PromptConfig
}

type flags struct {
	fresh  bool
	reuse  bool
	search string
	check  string
	qty    int
	export string
	ask    string
}

func parseFlags() flags {
	var f flags
	flag.BoolVar(&f.fresh, "fresh", false, "regenerate the inventory without asking")
	flag.BoolVar(&f.reuse, "reuse", false, "reuse the cached inventory without asking")
	flag.StringVar(&f.search, "search", "", "look a product up by name")
	flag.StringVar(&f.check, "check", "", "check stock of a product (use with --qty)")
	flag.IntVar(&f.qty, "qty", 1, "quantity for --check")
	flag.StringVar(&f.export, "export", "", "JSON export path (defaults to INVENTORY_EXPORT_FILE)")
	flag.StringVar(&f.ask, "ask", "", "ask the Gemini agent a question about the inventory")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("Could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment, Level: cfg.LogLevel})

	if err := cfg.Inventory.Validate(); err != nil {
		logx.Fatal().Err(err).Msg("Invalid inventory config")
	}
	if err := cfg.Promotions.Validate(); err != nil {
		logx.Fatal().Err(err).Msg("Invalid promotion config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, f, os.Stdin, os.Stdout); err != nil {
		logx.Fatal().Err(err).Msg("Inventory generator failed")
	}
}

func run(ctx context.Context, cfg AppConfig, f flags, in io.Reader, out io.Writer) error {
	clk := clock.NewRealClock()
	gen := generator.New(generator.NewRand(cfg.Inventory.Seed, clk), clk, cfg.Promotions)

	catalogRepo, closeRepo, err := repo.Open(ctx, cfg.Inventory, cfg.Redis)
	if err != nil {
		return fmt.Errorf("open catalog repository: %w", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logx.Warn().Err(err).Msg("Failed to close catalog repository")
		}
	}()

	inv := inventory.New(catalogRepo, gen, clk)

	fmt.Fprintln(out, "🛒 Inventory generator for agent experiments")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fresh := f.fresh
	if !f.fresh && !f.reuse {
		fresh = askFresh(in, out)
	}

	open := inv.Open
	if fresh {
		open = inv.Regenerate
	}
	if err := open(ctx); err != nil {
		return err
	}
	if err := inv.WriteSummary(out); err != nil {
		return err
	}

	exportPath := cfg.Inventory.ExportFile
	if f.export != "" {
		exportPath = f.export
	}
	if err := inv.Export(ctx, exportPath); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n✅ Inventory ready for experiments!")
	fmt.Fprintln(out, "📁 Generated files:")
	if cfg.Inventory.CacheBackend == model.CacheBackendRedis {
		fmt.Fprintf(out, "  • redis key %s (binary cache)\n", cfg.Inventory.CacheKey)
	} else {
		fmt.Fprintf(out, "  • %s (binary cache)\n", cfg.Inventory.CacheFile)
	}
	fmt.Fprintf(out, "  • %s (for lookups)\n", exportPath)

	if f.search != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, inventory.FormatLookup(inv.Lookup(f.search)))
	}

	if f.check != "" {
		check, err := inv.CheckStock(f.check, f.qty)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		fmt.Fprintln(out)
		if err := enc.Encode(check); err != nil {
			return fmt.Errorf("encode stock check: %w", err)
		}
	}

	if f.ask != "" {
		runner, err := graph.BuildAgentGraph(ctx, graph.Config{
			Agent:     cfg.Agent,
			Prompt:    cfg.Prompt,
			Inventory: inv,
		})
		if err != nil {
			return fmt.Errorf("build agent: %w", err)
		}
		answer, err := runner.Invoke(ctx, agentmodel.QueryInput{Query: f.ask})
		if err != nil {
			return fmt.Errorf("ask agent: %w", err)
		}
		fmt.Fprintf(out, "\n🤖 %s\n", answer)
	}

	return nil
}

// askFresh asks whether to build a new inventory. EOF counts as no.
func askFresh(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Create new inventory? (y/n): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	default:
		return false
	}
}
