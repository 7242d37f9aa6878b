package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ale-ignas/linkboard/internal/models"
)

func SetupCommands(a *App) *cobra.Command {
	var noBanner bool

	// root command
	rootCmd := &cobra.Command{
		Use:          "linkboard",
		Short:        "Browse a dated, categorized list of links",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.silence = a.silence || noBanner
			if err := a.Init(); err != nil {
				return err
			}
			a.Banner(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: first linkboard.yaml found)")
	flags.StringVar(&a.source, "source", "", "Dataset file path or http(s) URL (default: data/content.json)")
	flags.StringVar(&a.proxy, "proxy", "", "Proxy URL to use for remote datasets")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug output")
	flags.BoolVar(&a.progress, "progress", false, "Show download progress for remote datasets")
	flags.BoolVar(&a.silence, "silence", false, "Silence the banner")
	flags.BoolVar(&noBanner, "nobanner", false, "Silence the banner (alias for --silence)")

	// command for listing entries in the terminal
	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in the terminal",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateSort(listOpts.Sort)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.List(cmd.Context(), cmd.OutOrStdout(), listOpts)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Category, "category", "all", "Category to show")
	listCmd.Flags().StringVar(&listOpts.Resource, "resource", "all", "Resource to show")
	listCmd.Flags().StringVar(&listOpts.Sort, "sort", "", "Sort direction by date: desc or asc (default from config)")
	listCmd.Flags().BoolVar(&listOpts.Table, "table", false, "Show entries in table format")
	listCmd.Flags().BoolVar(&listOpts.Hyperlinks, "hyperlinks", false, "Make titles clickable terminal hyperlinks")

	// command for exporting a static HTML page
	var renderOpts RenderOptions
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page as static HTML",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateSort(renderOpts.Sort)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Render(cmd.Context(), cmd.OutOrStdout(), renderOpts)
		},
	}
	renderCmd.Flags().StringVarP(&renderOpts.Out, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().StringVar(&renderOpts.Variant, "variant", "", "Filter controls: select or tags (default from config)")
	renderCmd.Flags().StringVar(&renderOpts.Category, "category", "all", "Category to show")
	renderCmd.Flags().StringVar(&renderOpts.Resource, "resource", "all", "Resource to show")
	renderCmd.Flags().StringVar(&renderOpts.Sort, "sort", "", "Sort direction by date: desc or asc (default from config)")

	// command for serving the page over HTTP
	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Serve(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	// command for printing the filter options
	domainsCmd := &cobra.Command{
		Use:   "domains",
		Short: "Print the available categories and resources",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.Domains(cmd.Context(), cmd.OutOrStdout())
		},
	}

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		Args:  cobra.NoArgs,
		// no config or banner needed
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			printExamples(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(listCmd, renderCmd, serveCmd, domainsCmd, examplesCmd)

	return rootCmd
}

func validateSort(raw string) error {
	if raw == "" {
		return nil
	}
	if _, ok := models.ParseSortDirection(raw); !ok {
		return fmt.Errorf("invalid sort %q: must be desc or asc", raw)
	}
	return nil
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\nlinkboard usage examples")
	fmt.Fprintln(w, "\n1. List all entries, newest first:")
	fmt.Fprintln(w, "   linkboard list")
	fmt.Fprintln(w, "\n2. List one category as a table, oldest first:")
	fmt.Fprintln(w, "   linkboard list --category go --sort asc --table")
	fmt.Fprintln(w, "\n3. Load the dataset from a URL:")
	fmt.Fprintln(w, "   linkboard list --source https://example.com/data/content.json")
	fmt.Fprintln(w, "\n4. Export a static page with tag buttons:")
	fmt.Fprintln(w, "   linkboard render --variant tags -o index.html")
	fmt.Fprintln(w, "\n5. Serve the page on port 9000:")
	fmt.Fprintln(w, "   linkboard serve --addr :9000")
	fmt.Fprintln(w, "\n6. Show the available filter values:")
	fmt.Fprintln(w, "   linkboard domains")
}
