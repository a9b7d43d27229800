package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"product-scraper/config"
	"product-scraper/discovery"
	"product-scraper/extractor"
	"product-scraper/pipeline"
	"product-scraper/report"
	"product-scraper/utils"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
}

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var (
		configFlag     = flag.String("config", "config.json", "Path to the JSON config file")
		categoriesFlag = flag.String("categories", "category_urls.txt", "Path to the pipe-separated category list")
		logFileFlag    = flag.String("logfile", "scraper.log", "Path to the rotating log file")
		logLevelFlag   = flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	if level, err := logrus.ParseLevel(*logLevelFlag); err == nil {
		log.SetLevel(level)
	}

	// Console plus rotating file, matching the reference setup: 5 MB per
	// file, 3 backups kept.
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   *logFileFlag,
		MaxSize:    5,
		MaxBackups: 3,
	}))

	if err := run(*configFlag, *categoriesFlag); err != nil {
		log.Errorf("Fatal error, no reports were produced: %v", err)
		os.Exit(1)
	}

	// The scraper is usually launched by double-click; keep the window
	// open until the operator has seen the summary.
	fmt.Print("\nDone! Press Enter to exit: ")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func run(configPath, categoriesPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	targets, err := config.LoadCategoryTargets(categoriesPath)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("category file %s has no targets", categoriesPath)
	}
	log.Infof("Loaded %d category targets", len(targets))

	ctx := context.Background()
	runTimestamp := time.Now().Format("20060102150405")

	gemini, err := extractor.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	defer gemini.Close()

	browser := utils.NewBrowserClient(cfg, log)
	defer browser.Close()

	images := utils.NewImageClient(cfg, log)
	fields := extractor.New(gemini, log)

	discoverer := discovery.NewDiscoverer(browser, cfg, log)
	processor := pipeline.NewProcessor(browser, images, fields, cfg, log)
	orchestrator := pipeline.NewOrchestrator(discoverer, processor, log)

	summary, err := orchestrator.Run(ctx, targets)
	if err != nil {
		return err
	}

	store := orchestrator.Store()
	report.ValidateRecords(store.All())

	written, err := report.WriteReports(store.BySite(), cfg.OutputDir, runTimestamp, log)
	if err != nil {
		return err
	}

	for _, tally := range summary.Tallies {
		log.Infof("[%s] succeeded: %d, failed: %d", tally.SiteName, tally.Succeeded, tally.Failed)
	}
	log.Infof("Processed %d products, wrote %d reports", summary.TotalProcessed, len(written))
	return nil
}
