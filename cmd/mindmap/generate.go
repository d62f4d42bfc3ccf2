package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aayushsoam1/cogni-mind/internal/util"
	"github.com/aayushsoam1/cogni-mind/pkg/common"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"

	"github.com/spf13/cobra"
)

var (
	generateRaw     bool
	generateVideo   bool
	generateHuman   bool
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a mind map for a prompt",
	Long: `Send the prompt to the configured model and print the laid out mind map.

Examples:
  mindmap generate "DSA study plan"
  mindmap generate "Data science career" --video --human
  mindmap generate "Cloud basics" --raw`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := util.NewAIClientFromEnv()
		if err != nil {
			return err
		}
		gen, err := graph.NewGenerator(graph.NewGeneratorParams{
			Client:      client,
			Temperature: util.GetEnvNumeric("AI_TEMPERATURE", 0),
			RepairJSON:  util.GetEnvBool("AI_REPAIR_JSON", false),
			JSONMode:    util.GetEnvBool("AI_JSON_MODE", false),
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), generateTimeout)
		defer cancel()

		return runGenerate(ctx, gen, strings.Join(args, " "), generateOptions{
			Raw:   generateRaw,
			Video: generateVideo,
			Human: generateHuman,
		}, cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateRaw, "raw", false, "Print the payload as returned by the model, before layout")
	generateCmd.Flags().BoolVar(&generateVideo, "video", false, "Lay out video nodes in their own column")
	generateCmd.Flags().BoolVar(&generateHuman, "human", false, "Print a readable outline instead of JSON")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 60*time.Second, "Give up on the model after this long")
	rootCmd.AddCommand(generateCmd)
}

type generateOptions struct {
	Raw   bool
	Video bool
	Human bool
}

type payloadGenerator interface {
	Generate(ctx context.Context, prompt string) (*graph.RawPayload, error)
}

func runGenerate(ctx context.Context, gen payloadGenerator, prompt string, opts generateOptions, out io.Writer) error {
	payload, err := gen.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	if opts.Raw {
		return writeJSON(out, payload)
	}

	layout := graph.DefaultLayout()
	if opts.Video {
		layout = graph.NewLayout(graph.VideoBuckets())
	}
	g := graph.Build(payload, layout)

	if opts.Human {
		writeOutline(out, payload.Topic, g)
		return nil
	}
	return writeJSON(out, g)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeOutline(out io.Writer, topic string, g common.Graph) {
	if topic != "" {
		fmt.Fprintf(out, "%s\n\n", topic)
	}
	for _, n := range g.Nodes {
		marker := " "
		if n.Parent {
			marker = "*"
		}
		fmt.Fprintf(out, "%s (%4.0f,%4.0f) %-40s %s/%s\n", marker, n.Position.X, n.Position.Y, n.Label, n.Kind, common.CategoryColor(n.Category))
	}
	if len(g.Edges) > 0 {
		fmt.Fprintln(out)
	}
	for _, e := range g.Edges {
		if e.Relation != "" {
			fmt.Fprintf(out, "  %s -> %s (%s)\n", e.Source, e.Target, e.Relation)
		} else {
			fmt.Fprintf(out, "  %s -> %s\n", e.Source, e.Target)
		}
	}
}
