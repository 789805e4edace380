package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// run wraps a command body with env setup and teardown.
func (e *env) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := e.setup(cmd.Context()); err != nil {
			return err
		}
		defer e.close()
		return fn(cmd, args)
	}
}

func newReelCmd(e *env) *cobra.Command {
	var topic, category string
	var numTips int
	cmd := &cobra.Command{
		Use:   "reel",
		Short: "Generate an Instagram reel script (problem-solution format)",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		if topic == "" && category != "" {
			t, ok := e.composer.RandomTopic(category)
			if !ok {
				return fmt.Errorf("unknown category %q: must be one of %s", category, strings.Join(e.composer.Categories(), ", "))
			}
			topic = t
		}
		reel := e.composer.ComposeReel(topic, numTips)
		return e.emit(reel, func(p *printer) { p.reel(reel) })
	})
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Reel topic (random when empty)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Pick a random topic from this category")
	cmd.Flags().IntVarP(&numTips, "tips", "n", 3, "Number of tips")
	return cmd
}

func newHooksCmd(e *env) *cobra.Command {
	var category string
	var count int
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Generate content hook ideas",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		list := e.composer.ContentHooks(category, count)
		return e.emit(list, func(p *printer) { p.hooks(list) })
	})
	cmd.Flags().StringVarP(&category, "category", "c", "", "Topic category (random when empty)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of hooks")
	return cmd
}

func newIdeasCmd(e *env) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate quick content ideas from a random category",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		list := e.composer.QuickIdeas(count)
		return e.emit(list, func(p *printer) { p.ideas(list) })
	})
	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of ideas")
	return cmd
}

func newFrameworksCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frameworks [name]",
		Short: "List content frameworks or show one",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			list := e.composer.Frameworks()
			return e.emit(list, func(p *printer) { p.frameworkList(list) })
		}
		f := e.composer.Framework(args[0])
		return e.emit(f, func(p *printer) { p.framework(f) })
	})
	return cmd
}

func newCustomCmd(e *env) *cobra.Command {
	var contentType string
	var numTips int
	cmd := &cobra.Command{
		Use:   "custom <topic...>",
		Short: "Generate content for your own topic",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		out, err := e.composer.CustomContent(strings.Join(args, " "), contentType, numTips)
		if err != nil {
			return err
		}
		return e.emit(out.Payload(), func(p *printer) { p.custom(out) })
	})
	cmd.Flags().StringVarP(&contentType, "type", "T", composer.ContentTypeReel,
		"Content type: "+strings.Join(composer.ContentTypes, ", "))
	cmd.Flags().IntVarP(&numTips, "tips", "n", 3, "Number of tips (or hooks for --type hooks)")
	return cmd
}

func newTopicsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topic categories and their topics",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		all := e.composer.Topics()
		return e.emit(all, func(p *printer) { p.topics(e.composer.Categories(), all) })
	})
	return cmd
}

func newVideosCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos [type]",
		Short: "List video types or show the shot list for one",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			list := e.composer.VideoTypes()
			return e.emit(list, func(p *printer) { p.videoTypes(list) })
		}
		vt, shots := e.composer.Shots(args[0])
		payload := struct {
			VideoType content.VideoType `json:"video_type"`
			Shots     []content.Shot    `json:"shots"`
		}{vt, shots}
		return e.emit(payload, func(p *printer) { p.shots(vt, shots) })
	})
	return cmd
}

func newExamplesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Manage your saved hook, tip and script examples",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show saved examples",
		Args:  cobra.NoArgs,
	}
	list.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		c := e.store.Examples()
		return e.emit(c, func(p *printer) { p.examples(c) })
	})

	var kind, topic string
	var c examples.Content
	add := &cobra.Command{
		Use:   "add",
		Short: "Save a new example",
		Args:  cobra.NoArgs,
	}
	add.RunE = e.run(func(cmd *cobra.Command, args []string) error {
		k, err := examples.ParseKind(kind)
		if err != nil {
			return err
		}
		if !e.store.SaveExample(cmd.Context(), k, topic, c) {
			return fmt.Errorf("example not saved (check that the %s fields are filled in)", k)
		}
		return e.emit(map[string]bool{"saved": true}, func(p *printer) {
			p.line("Saved %s example for %q.", k, strings.ToLower(strings.TrimSpace(topic)))
		})
	})
	add.Flags().StringVarP(&kind, "kind", "k", string(examples.KindHook), "Example kind: hook, tip, full_script")
	add.Flags().StringVarP(&topic, "topic", "t", "", "Topic the example belongs to")
	add.Flags().StringVar(&c.Hook, "hook", "", "Hook text (kind hook)")
	add.Flags().StringVar(&c.Title, "title", "", "Tip title (kind tip)")
	add.Flags().StringVar(&c.Explanation, "explanation", "", "Tip explanation (kind tip)")
	add.Flags().StringVar(&c.Script, "script", "", "Full script (kind full_script)")
	_ = add.MarkFlagRequired("topic")

	cmd.AddCommand(list, add)
	return cmd
}
