package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"foodcourt/internal/config"
	"foodcourt/internal/logging"
	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
	"foodcourt/internal/output"
)

func main() {
	configFile := flag.String("config", "foodcourt.yaml", "config file path")
	page := flag.String("page", "", "page path carrying the food-court id")
	images := flag.Int("images", 5, "number of item images to probe")
	flag.Parse()

	if err := config.LoadDotEnv(".env", "env/.env"); err != nil {
		log.Fatalf("❌ %v", err)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if *page != "" {
		cfg = cfg.WithPagePath(*page)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger, err := logging.New(cfg.LogFile, true)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println("🧪 Checking the menu endpoint")
	fmt.Println("=======================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := menuservice.NewClient(cfg, logger)
	fmt.Printf("✅ Test 1: Endpoint resolved: %s\n", client.URL())

	// Fetch + group
	start := time.Now()
	data, err := output.LoadMenu(ctx, client)
	switch {
	case err == nil:
	case data != nil:
		fmt.Printf("⚠️  Test 2: Endpoint answered with no menu records (%v)\n", err)
		os.Exit(1)
	default:
		log.Fatalf("❌ Test 2: Failed to fetch menu: %v", err)
	}
	fmt.Printf("✅ Test 2: Fetched menu in %s\n", time.Since(start).Round(time.Millisecond))

	fmt.Printf("\n✓ Test 3: Grouped %d items into %d restaurants\n",
		menu.ItemCount(data.Restaurants), len(data.Restaurants))
	for _, r := range data.Restaurants {
		fmt.Printf("  - %s (%s): %d items\n", r.DisplayName(), r.Slug, len(r.Items))
	}

	// Banner
	fmt.Println("\n✓ Test 4: Probing banner")
	if data.Banner == "" {
		fmt.Println("  ⚠️  No banner in payload")
	} else if err := client.ProbeImage(ctx, data.Banner); err != nil {
		fmt.Printf("  ⚠️  Banner unavailable, title will be shown: %v\n", err)
	} else {
		fmt.Println("  ✅ Banner loads")
	}

	// Item images
	urls := menuservice.ImageURLs(data.Restaurants)
	if len(urls) > *images {
		urls = urls[:*images]
	}
	fmt.Printf("\n✓ Test 5: Probing %d item images\n", len(urls))
	prober := menuservice.NewImageProber(client, cfg.ImageProbeConcurrency)
	broken := 0
	for _, u := range urls {
		if err := prober.Probe(ctx, u); err != nil {
			broken++
			fmt.Printf("  ⚠️  %s: %v\n", u, err)
		}
	}
	fmt.Printf("  %d ok, %d will use the placeholder\n", len(urls)-broken, broken)

	fmt.Println("\n=======================================")
	fmt.Println("✅ All menu checks complete!")
	fmt.Println("\n💡 To browse interactively, run: go run .")
}
