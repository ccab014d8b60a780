package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Laincy/reconnected-se/internal/adapter/http/dto"
)

var (
	baseURL  string
	timeout  time.Duration
	pageSize int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rse-cli",
		Short: "Reconnected SE CLI tool",
		Long:  `A command line interface for interacting with the Reconnected SE API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Reconnected SE API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(portfolioCmd())
	rootCmd.AddCommand(stocksCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registerCmd() *cobra.Command {
	var discordID, minecraftID string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account for a Discord or Minecraft identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(dto.RegisterAccountRequest{
				DiscordID:   discordID,
				MinecraftID: minecraftID,
			})
			if err != nil {
				return err
			}

			var resp dto.RegisterAccountResponse
			if err := postJSON("/api/v1/accounts", body, &resp); err != nil {
				return err
			}

			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&discordID, "discord", "", "Discord snowflake to link")
	cmd.Flags().StringVar(&minecraftID, "minecraft", "", "Minecraft UUID to link")

	return cmd
}

func accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account <account-id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.AccountResponse
			if err := getJSON("/api/v1/accounts/"+url.PathEscape(args[0]), &resp); err != nil {
				return err
			}

			printJSON(resp)
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an external identity to its account ID",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "discord <snowflake>",
		Short: "Resolve a Discord snowflake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ResolveResponse
			if err := getJSON("/api/v1/resolve/discord/"+url.PathEscape(args[0]), &resp); err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "minecraft <uuid>",
		Short: "Resolve a Minecraft UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ResolveResponse
			if err := getJSON("/api/v1/resolve/minecraft/"+url.PathEscape(args[0]), &resp); err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	})

	return cmd
}

func portfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio <account-id>",
		Short: "List every holding of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + url.PathEscape(args[0]) + "/holdings"

			holdings, err := pageAll(func(offset, limit int64) ([]dto.HoldingResponse, int64, error) {
				var resp dto.HoldingsResponse
				if err := getJSON(pagedPath(path, offset, limit), &resp); err != nil {
					return nil, 0, err
				}
				return resp.Holdings, resp.Remaining, nil
			}, pageSize)
			if err != nil {
				return err
			}

			for _, h := range holdings {
				fmt.Printf("%-5s %d\n", h.Ticker, h.Shares)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&pageSize, "page-size", 50, "Entries fetched per request")

	return cmd
}

func stocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stocks",
		Short: "List every stock on the market",
		RunE: func(cmd *cobra.Command, args []string) error {
			stocks, err := pageAll(func(offset, limit int64) ([]dto.StockResponse, int64, error) {
				var resp dto.StocksResponse
				if err := getJSON(pagedPath("/api/v1/stocks", offset, limit), &resp); err != nil {
					return nil, 0, err
				}
				return resp.Stocks, resp.Remaining, nil
			}, pageSize)
			if err != nil {
				return err
			}

			for _, s := range stocks {
				fmt.Printf("%-5s %10s  %d shares  last trade %s\n", s.Ticker, s.Price, s.Shares, s.LastTrade)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&pageSize, "page-size", 50, "Entries fetched per request")

	return cmd
}

// errListingChanged aborts a paged listing when the remaining counts stop
// lining up between requests, which means the data moved underneath us.
var errListingChanged = errors.New("listing changed while paging, try again")

// pageAll walks a paged endpoint to exhaustion. Each page reports how many
// entries lie past it; consecutive pages must agree on that count or the
// walk aborts rather than return a listing stitched from two states.
func pageAll[T any](fetch func(offset, limit int64) ([]T, int64, error), size int64) ([]T, error) {
	if size < 1 {
		size = 1
	}

	var (
		all      []T
		offset   int64
		expected = int64(-1)
	)

	for {
		page, remaining, err := fetch(offset, size)
		if err != nil {
			return nil, err
		}

		if expected >= 0 && remaining != expected-int64(len(page)) {
			return nil, errListingChanged
		}

		all = append(all, page...)
		if remaining == 0 || len(page) == 0 {
			return all, nil
		}

		offset += int64(len(page))
		expected = remaining
	}
}

func pagedPath(path string, offset, limit int64) string {
	return fmt.Sprintf("%s?offset=%s&limit=%s", path,
		strconv.FormatInt(offset, 10), strconv.FormatInt(limit, 10))
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func postJSON(path string, body []byte, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return json.Unmarshal(payload, out)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
