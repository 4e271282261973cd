package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command group
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage rules files in your rules library",
	Long:  `Commands for managing the rules files in your rules library.`,
}

// rulesListCmd represents the rules ls command
var rulesListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available rules in your rules library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetRulesLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Rules library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'belote rules init' to create it.")
			return nil
		}

		defaultRules, err := config.GetDefaultRules()
		if err != nil {
			return fmt.Errorf("error getting default rules: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading rules library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}
			r, err := config.LoadRules(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a rules file, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == defaultRules {
				fmt.Printf("* %s (%s %s) [DEFAULT]\n", name, r.Name, r.Version)
			} else {
				fmt.Printf("  %s (%s %s)\n", name, r.Name, r.Version)
			}
		}

		if found == 0 {
			fmt.Println("No rules found in your rules library.")
			fmt.Println("You can add rules files by copying them to:", libraryPath)
		}
		return nil
	},
}

// rulesSetDefaultCmd represents the rules set-default command
var rulesSetDefaultCmd = &cobra.Command{
	Use:   "set-default [rules_name]",
	Short: "Set the default rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		r, err := config.ResolveRules(name)
		if err != nil {
			return err
		}
		if _, err := r.Scoring(); err != nil {
			return fmt.Errorf("not a valid rules file: %w", err)
		}

		if err := config.SetDefaultRules(name); err != nil {
			return fmt.Errorf("error setting default rules: %w", err)
		}

		fmt.Printf("Default rules set to: %s\n", name)
		return nil
	},
}

// rulesInitCmd represents the rules init command
var rulesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the rules library with the classic rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetRulesLibraryPath()
		classicPath := filepath.Join(libraryPath, config.ClassicRulesName+".toml")

		if _, err := os.Stat(classicPath); os.IsNotExist(err) {
			if err := config.WriteRules(classicPath, config.ClassicRules()); err != nil {
				return err
			}
		}

		fmt.Println("Rules library initialized at:", libraryPath)
		fmt.Println("You can now add rules files by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// rulesTableCmd represents the rules table command
var rulesTableCmd = &cobra.Command{
	Use:   "table [rules_name]",
	Short: "Print the scoring table of a rules file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRules(args)
		if err != nil {
			return err
		}
		scoring, err := r.Scoring()
		if err != nil {
			return err
		}

		pterm.DefaultSection.Printf("%s %s", r.Name, r.Version)

		data := pterm.TableData{{"Rank", "Normal", "Trump"}}
		for _, rank := range card.Ranks() {
			p := scoring[rank]
			data = append(data, []string{rank.String(), strconv.Itoa(p.Normal), strconv.Itoa(p.Trump)})
		}
		data = append(data, []string{
			"pack",
			strconv.Itoa(scoring.Total(card.NoSuit)),
			strconv.Itoa(scoring.Total(card.Hearts)),
		})
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		deal := make([]string, len(r.Deal))
		for i, n := range r.Deal {
			deal[i] = strconv.Itoa(n)
		}
		settings := map[string]string{
			"deal":             strings.Join(deal, "-"),
			"last trick bonus": strconv.Itoa(r.LastTrickBonus),
			"post-play delay":  r.Delay().String(),
			"cut":              strconv.FormatBool(r.Cut),
		}
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pterm.Printfln("%s: %s", pterm.LightCyan(k), settings[k])
		}
		return nil
	},
}

// loadRules resolves the rules named in args, or the configured default.
func loadRules(args []string) (*config.Rules, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		var err error
		name, err = config.GetDefaultRules()
		if err != nil {
			return nil, fmt.Errorf("error getting default rules: %w", err)
		}
	}
	r, err := config.ResolveRules(name)
	if err != nil {
		return nil, fmt.Errorf("error loading rules: %w", err)
	}
	return r, nil
}

func init() {
	RootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesSetDefaultCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rulesCmd.AddCommand(rulesTableCmd)
}
