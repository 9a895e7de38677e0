package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wikifinder/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wikifinder configuration",
	Long: `View and change the search provider, skip list, and corpus settings.

The search API key is set with 'config set-key' so it never appears in
shell history.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. List-valued keys take comma-separated
values:

  wikifinder config set search.provider google
  wikifinder config set search.skip_sites wikipedia.org,mirror.example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the search API key",
	Long:  `Prompt for the search provider API key without echoing it.`,
	RunE:  runConfigSetKey,
}

var configSkipCmd = &cobra.Command{
	Use:   "skip [site]",
	Short: "Add a site to the skip list",
	Long: `Add a domain to the list of sites excluded from search results.
A running find picks the change up without restarting.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSkip,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSkipCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("[Search]")
	cmd.Printf("  Provider: %s\n", configStore.GetString(file.KeySearchProvider))
	if key := configStore.GetString(file.KeySearchAPIKey); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Results per claim: %d\n", configStore.GetInt(file.KeySearchResults))
	cmd.Printf("  Requests per second: %d\n", configStore.GetInt(file.KeySearchPerSecond))
	cmd.Printf("  Skip sites: %s\n", strings.Join(configStore.GetStringSlice(file.KeySkipSites), ", "))
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Timeout: %ds\n", configStore.GetInt(file.KeyFetchTimeoutSecs))
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Citation templates: %s\n",
		strings.Join(configStore.GetStringSlice(file.KeyCitationNeeded), ", "))
	cmd.Printf("  Quote template: %s\n", configStore.GetString(file.KeyQuoteTemplate))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	value := parseConfigValue(key, raw)
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

// listKeys holds the keys whose values are comma-separated lists.
var listKeys = map[string]bool{
	file.KeySkipSites:      true,
	file.KeyCitationNeeded: true,
}

// parseConfigValue converts the raw argument to the type the store
// expects. Integer and boolean values must not be stored as strings, the
// typed getters would return zero values for them.
func parseConfigValue(key, raw string) any {
	if listKeys[key] {
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		return values
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("API key: ")
	key := readSecret()
	cmd.Println()
	if key == "" {
		return errors.New("no key entered")
	}

	if err := configStore.Set(file.KeySearchAPIKey, key); err != nil {
		return fmt.Errorf("save key: %w", err)
	}

	cmd.Println("API key saved")
	return nil
}

func runConfigSkip(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	site := strings.TrimSpace(args[0])
	sites := configStore.GetStringSlice(file.KeySkipSites)
	for _, s := range sites {
		if s == site {
			cmd.Printf("%s is already on the skip list\n", site)
			return nil
		}
	}

	if err := configStore.Set(file.KeySkipSites, append(sites, site)); err != nil {
		return fmt.Errorf("update skip list: %w", err)
	}

	cmd.Printf("Added %s to the skip list\n", site)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
