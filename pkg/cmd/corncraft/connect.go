package corncraft

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/client"
	cevent "github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/client/event"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/netmc"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

func connectCommand() *cli.Command {
	return &cli.Command{
		Name:  "connect",
		Usage: "Join a server and send stdin lines as chat messages",
		Description: `Joins the configured server and logs chat, title and inventory events.
Every line read from stdin is sent as chat message or, starting with '/', as command.

	:inv   prints the player inventory
	:quit  disconnects`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Usage: "server address, overrides the config"},
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "player name, overrides the config"},
			&cli.StringFlag{Name: "version", Usage: "game version, overrides the config"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			if c.IsSet("server") {
				cfg.Server = c.String("server")
			}
			if c.IsSet("username") {
				cfg.Username = c.String("username")
			}
			if c.IsSet("version") {
				cfg.Version = c.String("version")
			}

			log, err := newLogger(cfg.Debug, c.Int("verbosity"))
			if err != nil {
				return cli.Exit(fmt.Errorf("error initializing logger: %w", err), 1)
			}
			if err = validate(log, cfg); err != nil {
				return err
			}
			if err = connect(c.Context, log, cfg, os.Stdin, c.App.Writer); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

// sessionOptions maps the config to session options.
func sessionOptions(cfg *config.Config) (client.Options, error) {
	v, err := cfg.ProtocolVersion()
	if err != nil {
		return client.Options{}, err
	}
	tr, err := loadTranslations(cfg.LangFile)
	if err != nil {
		return client.Options{}, err
	}
	return client.Options{
		Address:          cfg.Server,
		Username:         cfg.Username,
		Version:          v,
		Brand:            cfg.Brand,
		Locale:           cfg.Locale,
		ViewDistance:     byte(cfg.ViewDistance),
		Translations:     tr,
		ConnectTimeout:   cfg.ConnectTimeout,
		ReadTimeout:      cfg.ReadTimeout,
		WriteTimeout:     cfg.WriteTimeout,
		KeepAliveTimeout: cfg.KeepAliveTimeout,
		CompressionLevel: cfg.Compression.Level,
		ChatRate:         cfg.Chat.Rate,
		ChatBurst:        cfg.Chat.Burst,
	}, nil
}

func loadTranslations(file string) (util.Translations, error) {
	if file == "" {
		return util.DefaultTranslations, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("error opening language file: %w", err)
	}
	defer f.Close()
	tr, err := util.LoadTranslations(f)
	if err != nil {
		return nil, fmt.Errorf("error loading language file %q: %w", file, err)
	}
	return tr, nil
}

func connect(ctx context.Context, log logr.Logger, cfg *config.Config, in io.Reader, out io.Writer) error {
	opts, err := sessionOptions(cfg)
	if err != nil {
		return err
	}
	stats := netmc.NewPacketStats(log)
	opts.Interceptors = append(opts.Interceptors, stats)
	defer stats.LogSummary()

	mgr := event.New(log.WithName("event"))
	s := client.NewSession(cevent.NewHandler(mgr, nil), opts)

	// the dispatcher stops with the session
	mainCtx, stop := context.WithCancel(ctx)
	defer stop()
	inv := newInventory(component.NewContext(opts.Version.Protocol))
	subscribe(mainCtx, mgr, log, s, inv, out)

	if !s.Login(logr.NewContext(ctx, log)) {
		return fmt.Errorf("could not connect to %s: %w", cfg.Server, s.Wait())
	}

	eg := new(errgroup.Group)
	eg.Go(func() error {
		err := s.NetMainThread().Run(mainCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		defer stop()
		return s.Wait()
	})
	go func() {
		<-mainCtx.Done()
		s.Disconnect()
	}()
	go readLines(mainCtx, log, s, inv, in, out)

	return eg.Wait()
}

func subscribe(ctx context.Context, mgr event.Manager, log logr.Logger, s *client.Session, inv *inventory, out io.Writer) {
	// inventory state is owned by the main goroutine
	toMain := func(fn func()) {
		if err := s.NetMainThread().Invoke(ctx, fn); err != nil && ctx.Err() == nil {
			log.Error(err, "error updating inventory")
		}
	}

	event.Subscribe(mgr, 0, func(e *cevent.LoginSuccessEvent) {
		log.Info("logged in", "username", e.Username, "uuid", e.ID)
	})
	event.Subscribe(mgr, 0, func(e *cevent.GameJoinedEvent) {
		log.Info("joined game", "entityID", e.Join.EntityID, "dimension", e.Join.DimensionName)
	})
	event.Subscribe(mgr, 0, func(e *cevent.ChatEvent) {
		printChat(out, formatChat(e.Message), e.Message.Kind == client.SystemMessage)
	})
	event.Subscribe(mgr, 0, func(e *cevent.TitleEvent) {
		if e.Update.Visible {
			log.Info("title", "title", e.Update.Title, "subtitle", e.Update.Subtitle)
		}
	})
	event.Subscribe(mgr, 0, func(e *cevent.HealthEvent) {
		log.V(1).Info("health", "health", e.Health, "food", e.Food)
	})
	event.Subscribe(mgr, 0, func(e *cevent.InventoryOpenEvent) {
		log.Info("window opened", "windowID", e.WindowID, "type", e.WindowType, "title", e.Title)
	})
	event.Subscribe(mgr, 0, func(e *cevent.InventoryItemsEvent) {
		toMain(func() { inv.setItems(int(e.WindowID), e.Items) })
	})
	event.Subscribe(mgr, 0, func(e *cevent.InventorySlotEvent) {
		toMain(func() { inv.setSlot(int(e.WindowID), int(e.Slot), e.Item) })
	})
	event.Subscribe(mgr, 0, func(e *cevent.InventoryCloseEvent) {
		toMain(func() { inv.close(int(e.WindowID)) })
	})
	event.Subscribe(mgr, 0, func(e *cevent.TransferEvent) {
		log.Info("server asked to transfer, not following", "host", e.Host, "port", e.Port)
	})
	event.Subscribe(mgr, 0, func(e *cevent.DisconnectEvent) {
		log.Info("disconnected", "reason", e.Reason, "message", e.Message)
	})
}

func formatChat(msg *client.ChatMessage) string {
	switch {
	case msg.Kind == client.SystemMessage:
		return msg.Content
	case msg.TargetName != "":
		return fmt.Sprintf("<%s -> %s> %s", msg.SenderName, msg.TargetName, msg.Content)
	default:
		return fmt.Sprintf("<%s> %s", msg.SenderName, msg.Content)
	}
}

func readLines(ctx context.Context, log logr.Logger, s *client.Session, inv *inventory, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit":
			s.Disconnect()
			return
		case ":inv":
			lines, err := client.InvokeValue(ctx, s.NetMainThread(), func() []string { return inv.summary(0) })
			if err != nil {
				return
			}
			for _, l := range lines {
				_, _ = fmt.Fprintln(out, l)
			}
			continue
		}
		if !s.SendChatMessage(line) {
			log.Info("message not sent", "state", s.State(), "max", s.MaxChatMessageLength())
		}
	}
}

// inventory keeps the slots of open windows, window 0 is the player inventory.
// It is only accessed from the main goroutine.
type inventory struct {
	c       *component.Context
	windows map[int]map[int]component.Slot
}

func newInventory(c *component.Context) *inventory {
	return &inventory{c: c, windows: map[int]map[int]component.Slot{}}
}

func (i *inventory) setItems(windowID int, items []component.Slot) {
	w := make(map[int]component.Slot, len(items))
	for slot, item := range items {
		if !item.Empty() {
			w[slot] = item
		}
	}
	i.windows[windowID] = w
}

func (i *inventory) setSlot(windowID, slot int, item component.Slot) {
	w, ok := i.windows[windowID]
	if !ok {
		w = map[int]component.Slot{}
		i.windows[windowID] = w
	}
	if item.Empty() {
		delete(w, slot)
		return
	}
	w[slot] = item
}

func (i *inventory) close(windowID int) {
	if windowID != 0 {
		delete(i.windows, windowID)
	}
}

func (i *inventory) summary(windowID int) []string {
	w := i.windows[windowID]
	slots := make([]int, 0, len(w))
	for slot := range w {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		item := w[slot]
		name := item.Name(i.c)
		if name == "" {
			name = fmt.Sprintf("item #%d", item.ItemID)
		}
		lines = append(lines, fmt.Sprintf("slot %d: %dx %s (%d components)", slot, item.Count, name, len(item.Components)))
	}
	return lines
}
