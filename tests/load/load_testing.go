package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8080" // e2e окружение
	rps        = 5
	duration   = 3 * time.Minute
	year       = 2024
)

// Логины должны существовать на GitHub: сид делает реальный пересчёт
var usernames = []string{"torvalds", "mitchellh", "bradfitz", "rsc", "spf13"}

var httpc = &http.Client{Timeout: 60 * time.Second}

func postURL(url string) (int, error) {
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed: прогреваем снимки, чтобы GET-запросы атаки попадали в хранилище
func seedData() error {
	log.Println("Seeding: refreshing yearly snapshots...")

	for _, username := range usernames {
		url := fmt.Sprintf("%s/users/%s/years/%d/refresh", targetHost, username, year)
		status, err := postURL(url)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN refresh %s returned %d\n", username, status)
		}
		time.Sleep(500 * time.Millisecond)
	}

	log.Printf("Seed completed: users=%d year=%d\n", len(usernames), year)
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		username := usernames[rand.Intn(len(usernames))]

		// 55% GET годовой статистики
		if r < 0.55 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/years/%d/stats", targetHost, username, year)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 25% GET уровня допуска
		if r < 0.80 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/years/%d/clearance", targetHost, username, year)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 18% GET каталога достижений
		if r < 0.98 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/achievements"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 2% POST пересчёта: дорогой путь с походом в upstream
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/users/%s/years/%d/refresh", targetHost, username, year)
		t.Body = nil
		t.Header = map[string][]string{"Accept": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if strings.TrimSpace(os.Getenv("GITHUB_TOKEN")) == "" {
		log.Println("WARN GITHUB_TOKEN is empty on the client side; the service still needs its own token for refresh")
	}

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
