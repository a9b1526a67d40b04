package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/places"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/search"
	"github.com/joho/godotenv"
)

// searchcli runs the geocode/search/paginate flow from the terminal.
// Useful for poking at provider responses without the HTTP server.
func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "loaded .env")
	}

	location := flag.String("location", "", "free-text location, e.g. \"Shibuya, Tokyo\"")
	term := flag.String("term", "", "search keyword, e.g. \"ramen\"")
	pages := flag.Int("pages", 1, "number of pages to fetch")
	sortBy := flag.String("sort", string(search.SortDistance), "distance | price_low_to_high | price_high_to_low")
	flag.Parse()

	if *location == "" || *term == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := logger.Init(cfg.ServerEnv); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger("searchcli")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session := search.New(search.Config{
		Geocoder:    places.NewNominatim(cfg.NominatimBaseURL),
		Searcher:    places.NewGoogleClient(cfg.GooglePlacesAPIKey, cfg.SearchRadiusMeters, cfg.SearchLanguage),
		SettleDelay: cfg.CursorSettleDelay,
	})

	if err := session.SetSortFilter(search.Criterion(*sortBy)); err != nil {
		log.Errorf("invalid sort: %v", err)
		os.Exit(2)
	}

	if err := session.Submit(ctx, *location, *term); err != nil {
		log.Errorf("search failed: %v", err)
		os.Exit(1)
	}

	printPage(session)

	for i := 1; i < *pages; i++ {
		advanced, err := session.NextPage(ctx)
		if err != nil {
			log.Errorf("next page failed: %v", err)
			os.Exit(1)
		}
		if !advanced {
			log.Infof("no more pages after page %d", session.PageIndex()+1)
			break
		}
		printPage(session)
	}
}

func printPage(s *search.Session) {
	fmt.Printf("--- page %d of %d ---\n", s.PageIndex()+1, s.PageCount())
	for _, r := range s.CurrentPage() {
		price := r.PriceTier
		if price == "" {
			price = "?"
		}
		fmt.Printf("%7.0fm  %-4s  %s\n", r.DistanceMeters, price, r.Name)
	}
}
