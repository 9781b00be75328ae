package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marketlens/options-radar/src/analysis"
	"github.com/marketlens/options-radar/src/eventpubsub"
	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/services"
	"github.com/marketlens/options-radar/src/utils"
)

type RunArgs struct {
	GoEnv      string
	Mode       string
	TopK       int
	Symbols    []string
	ConfigPath string
	CSVPath    string
	Synthetic  bool
}

var runCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the symbol universe and rank option trades across six strategies",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		mode, err := cmd.Flags().GetString("mode")
		if err != nil {
			log.Fatalf("error getting mode: %v", err)
		}

		topK, err := cmd.Flags().GetInt("top")
		if err != nil {
			log.Fatalf("error getting top: %v", err)
		}

		symbols, err := cmd.Flags().GetStringSlice("symbols")
		if err != nil {
			log.Fatalf("error getting symbols: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		synthetic, err := cmd.Flags().GetBool("synthetic-fallback")
		if err != nil {
			log.Fatalf("error getting synthetic-fallback: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:      goEnv,
			Mode:       mode,
			TopK:       topK,
			Symbols:    symbols,
			ConfigPath: configPath,
			CSVPath:    csvPath,
			Synthetic:  synthetic,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return fmt.Errorf("Run: error loading environment variables: %w", err)
	}

	eventpubsub.Init()

	if err := eventpubsub.Subscribe(eventpubsub.SymbolSkippedEvent, func(e eventpubsub.SymbolSkipped) {
		log.Debugf("skipped %s: %s", e.Symbol, e.Reason)
	}); err != nil {
		return fmt.Errorf("Run: failed to subscribe to skip events: %w", err)
	}

	cfg := models.DefaultRadarConfig()
	if args.ConfigPath != "" {
		loaded, err := models.LoadRadarConfig(args.ConfigPath)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		cfg = *loaded
	}

	var fetcher models.MarketDataFetcher = services.NewYahooClient()
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		fetcher = services.NewPolygonFetcher(apiKey)
	}

	ranker := analysis.NewRanker(fetcher)
	if args.Synthetic {
		ranker = ranker.WithSyntheticFallback(services.NewSyntheticDataSource(time.Now().UnixNano(), nil))
	}

	symbols := resolveUniverse(args, &cfg)

	status := services.CurrentMarketStatus(nil)
	log.Infof("%s — %s", status.Message, status.Note)
	log.Infof("scanning %d symbols", len(symbols))

	topK := cfg.TopPerStrategy
	if args.TopK > 0 {
		topK = args.TopK
	}

	result, err := ranker.Rank(context.Background(), symbols, analysis.RankParams{
		Mode:          analysis.RankMode(args.Mode),
		TopK:          topK,
		BatchSize:     cfg.BatchSize,
		BatchDelay:    cfg.BatchDelay(),
		FetchTimeout:  cfg.FetchTimeout(),
		MaxCandidates: cfg.MaxCandidates,
		Weights:       cfg.Scoring,
	})
	if err != nil {
		return fmt.Errorf("Run: ranking failed: %w", err)
	}

	if result.UsingFallback {
		log.Warn("all live fetches failed; results below are fallback data")
	}

	renderTable(result)

	if args.CSVPath != "" {
		if err := exportCSV(result.Recommendations, args.CSVPath); err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		log.Infof("wrote %d recommendations to %s", len(result.Recommendations), args.CSVPath)
	}

	return nil
}

func resolveUniverse(args RunArgs, cfg *models.RadarConfigYAML) []models.StockSymbol {
	if len(args.Symbols) > 0 {
		symbols := make([]models.StockSymbol, 0, len(args.Symbols))
		for _, s := range args.Symbols {
			symbols = append(symbols, models.NewStockSymbol(s))
		}

		return symbols
	}

	if len(cfg.Universe) > 0 {
		return cfg.UniverseSymbols()
	}

	screener := services.NewScreener(time.Hour, nil)
	symbols, _, err := screener.ActiveStocks(context.Background())
	if err != nil {
		log.Warnf("resolveUniverse: screener failed, using fallback list: %v", err)
		return services.FallbackUniverse()
	}

	return symbols
}

func renderTable(result *analysis.ScanResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Symbol", "Strategy", "Strike", "Premium", "ROC %", "Annual %", "IV %", "Risk", "Score"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	for _, rec := range result.Recommendations {
		strike := fmt.Sprintf("%.2f", rec.StrikePrice)
		if rec.ShortStrike > 0 {
			strike = fmt.Sprintf("%.2f/%.2f", rec.StrikePrice, rec.ShortStrike)
		}

		table.Append([]string{
			fmt.Sprintf("%d", rec.Rank),
			rec.Symbol.String(),
			string(rec.Strategy),
			strike,
			utils.FormatUSD(rec.TotalPremium),
			fmt.Sprintf("%.2f", rec.ReturnOnCapitalPct),
			fmt.Sprintf("%.1f", rec.AnnualizedReturnPct),
			fmt.Sprintf("%.1f", rec.ImpliedVolatilityPct),
			string(rec.RiskLevel),
			fmt.Sprintf("%.1f", rec.Score),
		})
	}

	table.Render()

	fmt.Printf("\n%d recommendations (%d symbols skipped), mean score %.1f, median %.1f, mean IV %.1f%%\n",
		result.Summary.Count, result.Skipped, result.Summary.MeanScore, result.Summary.MedianScore, result.Summary.MeanIVPct)
}

func exportCSV(recs []models.Recommendation, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exportCSV: failed to create %s: %w", path, err)
	}

	defer file.Close()

	rows := make([]models.RecommendationCSVDTO, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, models.NewRecommendationCSVDTO(rec))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("exportCSV: failed to write %s: %w", path, err)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment: development | production")
	runCmd.PersistentFlags().String("mode", string(analysis.TopPerStrategy), "Selection mode: best-per-symbol | top-per-strategy")
	runCmd.PersistentFlags().Int("top", 0, "Top K per strategy (top-per-strategy mode)")
	runCmd.PersistentFlags().StringSlice("symbols", nil, "Explicit symbols to scan instead of the screener universe")
	runCmd.PersistentFlags().String("config", "", "Path to radar.yaml")
	runCmd.PersistentFlags().String("csv", "", "Write recommendations to a CSV file")
	runCmd.PersistentFlags().Bool("synthetic-fallback", false, "Serve clearly-labeled synthetic data when every live fetch fails")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("scan: %v", err)
	}
}
