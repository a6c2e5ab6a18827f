// Command suggest is a terminal autocomplete client for a running eventhub server.
// Each input line is treated as a keystroke burst; only the latest query's
// suggestions are printed.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"time"

	"eventhub/config"
	"eventhub/services/autocomplete"
	"eventhub/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	baseURL := config.AppConfig.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + config.AppConfig.AppPort
	}
	fetcher := &autocomplete.HTTPFetcher{
		BaseURL: baseURL,
		Limit:   8,
		Client:  &http.Client{Timeout: autocomplete.DefaultTimeout},
	}

	delivered := make(chan uint64, 16)
	d := autocomplete.NewDebouncer(fetcher, func(r autocomplete.Result) {
		defer func() {
			select {
			case delivered <- r.Seq:
			default:
			}
		}()
		if r.Err != nil {
			logger.Warn("suggest: fetch failed", zap.String("query", r.Query), zap.Error(r.Err))
			fmt.Println(autocomplete.FailureMessage)
			return
		}
		fmt.Printf("%q -> %d suggestions\n", r.Query, len(r.Suggestions))
		for _, s := range r.Suggestions {
			fmt.Printf("  [%s] %s (%d)\n", s.Type, s.Label, s.Score)
		}
	})
	defer d.Close()

	fmt.Printf("Querying %s, type to search (Ctrl-D to quit)\n", baseURL)
	var last uint64
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		last = d.Submit(scanner.Text())
	}
	if last == 0 {
		return
	}

	// Let the last pending query finish.
	deadline := time.After(autocomplete.DefaultDelay + autocomplete.DefaultTimeout)
	for {
		select {
		case seq := <-delivered:
			if seq == last {
				return
			}
		case <-deadline:
			return
		}
	}
}
