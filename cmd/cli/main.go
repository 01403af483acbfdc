package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "auntiecount-cli",
		Short: "AuntieCount CLI tool",
		Long:  `A command line interface for interacting with the AuntieCount API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the AuntieCount API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var token string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the full entry list for a token",
		Run: func(cmd *cobra.Command, args []string) {
			getSummary(token)
		},
	}
	summaryCmd.Flags().StringVar(&token, "token", "", "Summary token")
	summaryCmd.MarkFlagRequired("token")

	var clearToken string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Wipe the ledger for a token",
		Run: func(cmd *cobra.Command, args []string) {
			clearLedger(clearToken)
		},
	}
	clearCmd.Flags().StringVar(&clearToken, "token", "", "Summary token")
	clearCmd.MarkFlagRequired("token")

	feedbackCmd := &cobra.Command{
		Use:   "feedback",
		Short: "Feedback operations",
	}
	var limit, offset int
	feedbackListCmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback records, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			listFeedback(limit, offset)
		},
	}
	feedbackListCmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	feedbackListCmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	feedbackCmd.AddCommand(feedbackListCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	rootCmd.AddCommand(summaryCmd, clearCmd, feedbackCmd, healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getSummary(token string) {
	body := getJSON("/api/summary?u=" + url.QueryEscape(token))

	var result struct {
		Entries []struct {
			Category string `json:"category"`
			Amount   string `json:"amount"`
			Date     string `json:"date"`
		} `json:"entries"`
		Timezone string `json:"tz"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Timezone: %s\n", result.Timezone)
	fmt.Printf("Entries: %d\n", len(result.Entries))
	for _, e := range result.Entries {
		fmt.Printf("  %s  S$%s  %s\n", e.Date, e.Amount, e.Category)
	}
}

func clearLedger(token string) {
	payload, _ := json.Marshal(map[string]string{"u": token})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/clear", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Clear FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		CountBefore int `json:"countBefore"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared %d entries\n", result.CountBefore)
}

func listFeedback(limit, offset int) {
	body := getJSON(fmt.Sprintf("/api/feedback?limit=%d&offset=%d", limit, offset))

	var result struct {
		Total int `json:"total"`
		Items []struct {
			ID       string `json:"id"`
			Page     string `json:"page"`
			Message  string `json:"message"`
			AtServer string `json:"atServer"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total: %d\n", result.Total)
	for _, item := range result.Items {
		fmt.Printf("  [%s] %s (%s): %s\n", item.AtServer, item.ID, item.Page, item.Message)
	}
}

func checkHealth() {
	body := getJSON("/ready")

	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Status: %s\n", result["status"])
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}
