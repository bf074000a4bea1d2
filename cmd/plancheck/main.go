// CLI smoke check: POSTs a sample plan request to a running server and
// prints the computed plan. Usage: go run ./cmd/plancheck (from the repo root).
// Reads API_URL from the environment (default http://localhost:3000).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	sample := map[string]any{
		"units":          "metric",
		"weight_kg":      70.0,
		"height_cm":      170.0,
		"age":            25,
		"sex":            "male",
		"activity_level": "moderate",
		"goal":           "lose_standard",
		"macro_preset":   "balanced",
	}

	body, err := json.Marshal(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(baseURL+"/api/plan", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "server returned status %d: %s\n", resp.StatusCode, respBytes)
		os.Exit(1)
	}

	// Re-indent for readability
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBytes, "", "  "); err != nil {
		fmt.Println(string(respBytes))
		return
	}
	fmt.Println(pretty.String())
}
