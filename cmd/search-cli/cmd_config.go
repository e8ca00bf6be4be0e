package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"smart-search-agent/internal/domain/searchconfig"
)

const redactedKey = "********"

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long:  `Inspect the resolved Serper configuration, print the config file schema and validate config files.`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved search configuration",
		Long:  `Resolve the configuration the same way the server does (file, then SERPER_API_KEY, then defaults) and print it as JSON.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	showCmd.Flags().Bool("show-key", false, "Print the API key instead of redacting it")

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigSchema,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a config file",
		Long:  `Strictly parse the config file. The server ignores malformed files; this command reports them.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigValidate,
	}

	configCmd.AddCommand(showCmd, schemaCmd, validateCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("file")
	showKey, _ := cmd.Flags().GetBool("show-key")

	cfg := searchconfig.NewResolver(configFile, cliLogger(cmd)).Resolve(cmd.Context())
	if !showKey && cfg.HasAPIKey() {
		cfg.APIKey = redactedKey
	}

	data, err := json.MarshalIndent(struct {
		searchconfig.SearchConfig
		Source searchconfig.Source `json:"source"`
	}{cfg, cfg.Source}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(configFileSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func configFileSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            false,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(&searchconfig.File{})
	schema.Title = "Smart Search Agent Configuration"
	schema.Description = "Serper search settings read by the smart search agent"
	return schema
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("file")

	file, err := searchconfig.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s is valid\n", configFile)
	if file.Serper == nil || file.Serper.APIKey == nil {
		fmt.Fprintf(out, "  no api_key set, %s will be used\n", searchconfig.APIKeyEnvVar)
	}
	return nil
}
