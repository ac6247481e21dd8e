// Package main provides hrctl, a thin command line over the HR portal API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hrportal/client"
)

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "HR portal command line",
	Long:  "hrctl talks to an HR portal backend: log in, inspect contracts and teams, submit and decide leave, and download payslips.",
}

var (
	baseURL string
	token   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (defaults to HRPORTAL_URL or "+client.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (defaults to HRPORTAL_TOKEN)")
}

func newClient() *client.Client {
	url := baseURL
	if url == "" {
		url = os.Getenv("HRPORTAL_URL")
	}
	t := token
	if t == "" {
		t = os.Getenv("HRPORTAL_TOKEN")
	}
	return client.New(url, client.WithToken(t))
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
