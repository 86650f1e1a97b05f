package corncraft

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/nbtconv"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

var versionFlag = &cli.StringFlag{
	Name:  "version",
	Usage: "game version name or protocol number",
	Value: version.MaximumVersion.LastName(),
}

func parseVersion(c *cli.Context) (*proto.Version, error) {
	v, err := version.Parse(c.String("version"))
	if err != nil {
		return nil, cli.Exit(fmt.Errorf("%w (supported: %s)", err, version.SupportedVersionsString), 1)
	}
	return v, nil
}

func decodeSlotCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode-slot",
		Usage:     "Decode a hex encoded item slot",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{versionFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one hex argument", 1)
			}
			v, err := parseVersion(c)
			if err != nil {
				return err
			}
			b, err := hex.DecodeString(strings.TrimSpace(c.Args().First()))
			if err != nil {
				return cli.Exit(fmt.Errorf("invalid hex: %w", err), 1)
			}
			out, err := decodeSlot(component.NewContext(v.Protocol), b)
			if err != nil {
				return cli.Exit(err, 1)
			}
			return writeYAML(c.App.Writer, out)
		},
	}
}

type slotView struct {
	Count      int             `yaml:"count"`
	ItemID     int             `yaml:"itemId"`
	Item       string          `yaml:"item,omitempty"`
	Damage     int16           `yaml:"damage,omitempty"`
	Components []componentView `yaml:"components,omitempty"`
	Removed    []string        `yaml:"removed,omitempty"`
	NBT        string          `yaml:"nbt,omitempty"`
}

type componentView struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func decodeSlot(ctx *component.Context, b []byte) (*slotView, error) {
	cur := util.NewCursor(b)
	s, err := component.ReadSlot(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("error decoding slot: %w", err)
	}
	if err = cur.ExpectEnd(); err != nil {
		return nil, err
	}

	view := &slotView{
		Count:  s.Count,
		ItemID: s.ItemID,
		Item:   s.Name(ctx),
		Damage: s.Damage,
	}
	if !util.EmptyTag(s.NBT) {
		view.NBT = nbtconv.SNBT(&s.NBT)
	}
	for _, comp := range s.Components {
		id, err := component.Components.ID(ctx.Protocol, comp)
		if err != nil {
			return nil, err
		}
		view.Components = append(view.Components, componentView{
			ID:    id,
			Name:  component.Components.NameOf(comp),
			Value: strings.TrimPrefix(fmt.Sprintf("%+v", comp), "&"),
		})
	}
	if len(s.Removed) != 0 {
		entries, err := component.Components.Entries(ctx.Protocol)
		if err != nil {
			return nil, err
		}
		names := make(map[int]string, len(entries))
		for _, e := range entries {
			names[e.ID] = e.Name
		}
		for _, id := range s.Removed {
			name, ok := names[id]
			if !ok {
				name = fmt.Sprintf("#%d", id)
			}
			view.Removed = append(view.Removed, name)
		}
	}
	return view, nil
}

func componentsCommand() *cli.Command {
	return &cli.Command{
		Name:      "components",
		Usage:     "List the item components of a version",
		ArgsUsage: "[name]",
		Flags:     []cli.Flag{versionFlag},
		Action: func(c *cli.Context) error {
			v, err := parseVersion(c)
			if err != nil {
				return err
			}
			entries, err := component.Components.Entries(v.Protocol)
			if err != nil {
				return cli.Exit(err, 1)
			}
			if c.NArg() == 0 {
				for _, e := range entries {
					_, _ = fmt.Fprintf(c.App.Writer, "%3d  %-40s %s\n", e.ID, e.Name, e.Type)
				}
				return nil
			}
			name := c.Args().First()
			if !strings.Contains(name, ":") {
				name = "minecraft:" + name
			}
			for _, e := range entries {
				if e.Name == name {
					_, _ = fmt.Fprintf(c.App.Writer, "%d  %s %s\n", e.ID, e.Name, e.Type)
					return nil
				}
			}
			msg := fmt.Sprintf("unknown component %q for %s", name, v)
			if s := closest(name, entries); s != "" {
				msg += fmt.Sprintf(", did you mean %q?", s)
			}
			return cli.Exit(msg, 1)
		},
	}
}

// closest returns the entry name nearest to name or "" if none is close.
func closest(name string, entries []component.Entry) string {
	var (
		best     string
		bestDist = len(name)/2 + 1
	)
	for _, e := range entries {
		if d := levenshtein.Distance(name, e.Name, nil); d < bestDist {
			best, bestDist = e.Name, d
		}
	}
	return best
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return cli.Exit(fmt.Errorf("error encoding output: %w", err), 1)
	}
	return enc.Close()
}
