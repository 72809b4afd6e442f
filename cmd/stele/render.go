package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
	"github.com/stele-cms/stele/pkg/manifest"
	"github.com/stele-cms/stele/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		manifestPath string
		pretty       bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render <element>",
		Short: "Render one element to HTML",
		Long: `Render a single element from the manifest using its default
ingredient values and print the HTML.

Examples:
  stele render article_teaser
  stele render hero --manifest content/elements.yml -o hero.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], manifestPath, output, pretty)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "elements.yml", "Path to the element manifest")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print rendered HTML")

	return cmd
}

func runRender(name, manifestPath, output string, pretty bool) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	def, ok := m.Definition(name)
	if !ok {
		return fmt.Errorf("element %q not found in %s", name, manifestPath)
	}

	inst, err := def.NewInstance(nil)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	renderer := element.NewRenderer(element.WithLogger(logger))

	opts := []element.RenderOption{
		element.WithID(inst.DomID()),
		element.WithClass(inst.Name()),
	}
	if def.Tag != "" {
		opts = append(opts, element.WithTag(def.Tag))
	}

	node := renderer.RenderElement(context.Background(), inst, func(sc *element.Scope) *dom.Node {
		return dom.Fragment(dom.Range(inst.Roles(), func(role string, _ int) *dom.Node {
			return sc.Render(role)
		})...)
	}, opts...)

	html, err := render.NewRenderer(render.Config{Pretty: pretty}).ToString(node)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(html)
		return nil
	}
	return os.WriteFile(output, []byte(html+"\n"), 0o644)
}
