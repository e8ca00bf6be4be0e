package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainsearch "smart-search-agent/internal/domain/search"
	"smart-search-agent/internal/domain/searchconfig"
	"smart-search-agent/internal/infrastructure/serper"
	mcproutes "smart-search-agent/internal/interfaces/httpserver/routes/mcp"
)

var errSearchFailed = errors.New("search failed")

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a web search and print the formatted report",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	cmd.Flags().Duration("timeout", serper.DefaultTimeout, "Search API timeout")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("file")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	log := cliLogger(cmd)

	service := domainsearch.NewSearchService(
		searchconfig.NewResolver(configFile, log),
		serper.NewClient(serper.ClientConfig{HTTPTimeout: timeout}, log),
		log,
	)

	report := service.Search(cmd.Context(), strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), report)
	if domainsearch.IsErrorReport(report) {
		return errSearchFailed
	}
	return nil
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), mcproutes.Greet(args[0]))
			return nil
		},
	}
}
