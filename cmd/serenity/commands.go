package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/serenity-wellness/serenity/pkg/serenity"
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/preview"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"github.com/serenity-wellness/serenity/pkg/serenity/screens"
	"github.com/spf13/cobra"
)

func resolveCmd(g *globalFlags) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "resolve FAMILY VARIANT",
		Short: "Resolve an asset handle for the active theme",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := catalog.Family(args[0])
			if !family.IsKnown() {
				return fmt.Errorf("%w: %q", catalog.ErrUnknownFamily, args[0])
			}
			st, err := catalog.ParseState(state)
			if err != nil {
				return err
			}

			app, err := g.init(cmd, nil)
			if err != nil {
				return err
			}

			res := app.Selector.ResolveDetailed(family, args[1], app.Appearance.Theme(), st)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", res.Handle, res.Key, res.Outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Interaction state (selected, unselected)")
	return cmd
}

func variantsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "variants [FAMILY]",
		Short: "List catalog families, their defaults and variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.init(cmd, nil)
			if err != nil {
				return err
			}

			families := app.Catalog.Families()
			if len(args) == 1 {
				family := catalog.Family(args[0])
				if !app.Catalog.Declares(family) {
					return fmt.Errorf("%w: %q", catalog.ErrUnknownFamily, args[0])
				}
				families = []catalog.Family{family}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tDEFAULT\tVARIANTS")
			for _, f := range families {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f, app.Catalog.DefaultVariant(f), strings.Join(app.Catalog.Variants(f), ", "))
			}
			return w.Flush()
		},
	}
}

// walkFlags configure a headless walk.
type walkFlags struct {
	inputs string
	params []string
}

func (wf *walkFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&wf.inputs, "inputs", "", "Comma separated inputs (next, back, left, right, confirm, toggle)")
	cmd.Flags().StringArrayVar(&wf.params, "param", nil, "Start screen parameter as name=value (repeatable)")
}

func walkCmd(g *globalFlags) *cobra.Command {
	wf := &walkFlags{}

	cmd := &cobra.Command{
		Use:   "walk [SCREEN]",
		Short: "Run screens headlessly from a script of inputs",
		Long: `Walk mounts SCREEN (default Onboarding), feeds it the scripted inputs and
follows every navigation request it produces. Each displayed state is printed
as it appears; the walk stops when the inputs run out or the stack empties.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.init(cmd, nil)
			if err != nil {
				return err
			}
			return walk(cmd.OutOrStdout(), app, args, wf)
		},
	}

	wf.bind(cmd)
	return cmd
}

func metricsCmd(g *globalFlags) *cobra.Command {
	wf := &walkFlags{}

	cmd := &cobra.Command{
		Use:   "metrics [SCREEN]",
		Short: "Walk like the walk command, then print the collected metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			app, err := g.init(cmd, reg)
			if err != nil {
				return err
			}
			if err := walk(io.Discard, app, args, wf); err != nil {
				return err
			}
			return writeMetrics(cmd.OutOrStdout(), reg)
		},
	}

	wf.bind(cmd)
	return cmd
}

func previewCmd(g *globalFlags) *cobra.Command {
	var width, height int32

	cmd := &cobra.Command{
		Use:   "preview [SCREEN]",
		Short: "Open the desktop preview window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.init(cmd, nil)
			if err != nil {
				return err
			}
			start, err := startRequest(app, args, nil)
			if err != nil {
				return err
			}
			return preview.Run(app, start, preview.Options{
				Width:  width,
				Height: height,
				Assets: g.assets(),
			})
		},
	}

	cmd.Flags().Int32Var(&width, "width", 0, "Window width (default WINDOW_WIDTH or 768)")
	cmd.Flags().Int32Var(&height, "height", 0, "Window height (default WINDOW_HEIGHT or 1024)")
	return cmd
}

func walk(out io.Writer, app *serenity.App, args []string, wf *walkFlags) error {
	start, err := startRequest(app, args, wf.params)
	if err != nil {
		return err
	}
	script, err := screens.ParseScript(wf.inputs)
	if err != nil {
		return err
	}

	view := screens.ViewFunc(func(s screens.Screen) {
		line := fmt.Sprintf("%-13s %s", s.Name(), s.Display())
		if caption := s.Caption(); caption != "" {
			line += fmt.Sprintf(" (%s)", caption)
		}
		fmt.Fprintln(out, line)
	})

	stack, err := app.Walk(start, script, view)
	if err != nil {
		return err
	}

	names := make([]string, 0, stack.Len())
	for _, s := range stack.Screens() {
		names = append(names, string(s))
	}
	fmt.Fprintf(out, "stack: [%s]\n", strings.Join(names, " "))
	if n := script.Remaining(); n > 0 {
		fmt.Fprintf(out, "unused inputs: %d\n", n)
	}
	return nil
}

// startRequest builds the first request from an optional screen name and
// name=value parameters, converted to the kinds the destination declares.
func startRequest(app *serenity.App, args []string, raw []string) (router.Request, error) {
	if len(args) == 0 {
		if len(raw) > 0 {
			return router.Request{}, fmt.Errorf("--param needs a SCREEN")
		}
		return app.Start(), nil
	}

	screen := router.Screen(args[0])
	dest, ok := app.Registry.Destination(screen)
	if !ok {
		return router.Request{}, fmt.Errorf("%w: %q", router.ErrUnknownScreen, args[0])
	}

	params, err := parseParams(dest, raw)
	if err != nil {
		return router.Request{}, err
	}
	return app.Registry.Request(screen, params, dest.Presentation)
}

func parseParams(dest router.Destination, raw []string) (router.Params, error) {
	kinds := make(map[string]router.ParamKind, len(dest.Params))
	for _, spec := range dest.Params {
		kinds[spec.Name] = spec.Kind
	}

	params := make(router.Params, len(raw))
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not name=value", pair)
		}
		kind, declared := kinds[name]
		if !declared {
			return nil, fmt.Errorf("%w: %s.%s", router.ErrUnexpectedParam, dest.Screen, name)
		}

		switch kind {
		case router.KindInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", router.ErrParamKind, dest.Screen, name, err)
			}
			params[name] = n
		case router.KindBool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", router.ErrParamKind, dest.Screen, name, err)
			}
			params[name] = b
		default:
			params[name] = value
		}
	}
	return params, nil
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
