package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"query-binding/binding"
	"query-binding/binding/application"
	"query-binding/binding/domain"
	"query-binding/binding/infra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		declarationsFile string
		endpointPath     string
		providers        []string
	)

	cmd := &cobra.Command{
		Use:   "resolve [query]",
		Short: "Resolve a raw query string against the provider declarations",
		Long: `Resolve runs the same resolution as the filter server, offline.

Examples:
  resolve --endpoint /filters 'fieldA=a&valueA=a&fieldB=b&valueB=b'
  resolve --provider id_filter 'ids=1&ids=2'`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			out, err := run(declarationsFile, endpointPath, providers, raw)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&declarationsFile, "declarations", "d", "", "YAML declarations file (default: embedded catalog)")
	cmd.Flags().StringVarP(&endpointPath, "endpoint", "e", "/", "endpoint path to resolve")
	cmd.Flags().StringSliceVarP(&providers, "provider", "p", nil, "resolve these providers instead of an endpoint")
	return cmd
}

func run(declarationsFile, endpointPath string, providers []string, raw string) ([]byte, error) {
	var (
		decl domain.Declarations
		err  error
	)
	if declarationsFile == "" {
		decl, err = infra.DefaultDeclarations()
	} else {
		decl, err = infra.LoadDeclarations(declarationsFile)
	}
	if err != nil {
		return nil, err
	}
	catalog, err := application.NewCatalog(decl)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}

	ep := domain.Endpoint{Path: "(cli)", Providers: providers}
	if len(providers) == 0 {
		var ok bool
		if ep, ok = catalog.Endpoint(endpointPath); !ok {
			return nil, errors.Errorf("unknown endpoint %q", endpointPath)
		}
	}

	q, err := domain.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	records, err := catalog.Composer.ComposeEndpoint(ep, q)
	if err != nil {
		return nil, err
	}
	return binding.Render(ep, records)
}
