package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/activitylist/activitylist/internal/icon"
	"github.com/activitylist/activitylist/internal/logging"
	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/service"
	"github.com/activitylist/activitylist/internal/store"
	"github.com/activitylist/activitylist/internal/theme"
)

// Runner holds the dependencies shared by the CLI commands.
type Runner struct {
	config *model.AppConfig
	logger *log.Logger
	output io.Writer
	engine store.Engine

	ec    *store.ExecContext
	lists *store.TasksListStore
	items *store.TaskItemStore
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *model.AppConfig
	Logger *log.Logger
	Output io.Writer

	// Engine replaces the store file named by the configuration.
	Engine store.Engine
}

// NewRunner creates a Runner. The store is opened by Before.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = logging.New(nil, "warn")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		engine: opts.Engine,
	}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "home",
			Usage:  "Show every tasks list with its number of tasks",
			Action: r.Home,
		},
		{
			Name:  "items",
			Usage: "Show the tasks of one list",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "list", Aliases: []string{"l"}, Usage: "Tasks list id", Required: true},
			},
			Action: r.Items,
		},
		{
			Name:  "add-list",
			Usage: "Create a tasks list",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
				&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "undefined"},
			},
			Action: r.AddList,
		},
		{
			Name:  "add-item",
			Usage: "Add a task to a list",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "list", Aliases: []string{"l"}, Usage: "Tasks list id", Required: true},
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
				&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "undefined"},
			},
			Action: r.AddItem,
		},
		{
			Name:    "tui",
			Aliases: []string{"ui"},
			Usage:   "Launch the interactive interface",
			Action:  r.TUI,
		},
		{
			Name:   "seed",
			Usage:  "Fill the store with sample lists",
			Action: r.Seed,
		},
	}
}

// Before loads the configuration and opens the store.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.config == nil {
		path := cmd.String("config")
		if path == "" {
			path = model.DefaultConfigPath()
		}
		cfg, err := model.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = cfg
	}

	if lvl, err := log.ParseLevel(r.config.Log.Level); err == nil {
		r.logger.SetLevel(lvl)
	}

	ec, err := r.openStore()
	if err != nil {
		return ctx, err
	}

	storeLogger := logging.With(r.logger, "store")
	r.ec = ec
	r.lists = store.NewTasksListStore(ec, store.WithLogger(storeLogger))
	r.items = store.NewTaskItemStore(ec, store.WithLogger(storeLogger))
	return ctx, nil
}

func (r *Runner) openStore() (*store.ExecContext, error) {
	db := r.config.Database
	if r.engine != nil {
		return store.NewExecContext(r.engine, db.QueueDepth), nil
	}
	if err := ensureDir(db.Path); err != nil {
		return nil, err
	}
	ec, err := store.Open(db.Path, db.QueueDepth)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", db.Path, err)
	}
	return ec, nil
}

// After closes the store.
func (r *Runner) After(ctx context.Context, cmd *cli.Command) error {
	if r.ec == nil {
		return nil
	}
	return r.ec.Close()
}

// Home prints one row per tasks list. If the lists cannot be read the list
// is not shown at all.
func (r *Runner) Home(ctx context.Context, cmd *cli.Command) error {
	home := service.NewHomeService[icon.Icon](r.lists, icon.Service{})
	rows, err := service.NewHomeItems(home).ReadItems(ctx)
	if errors.Is(err, service.ErrReadFromRepository) {
		r.logger.Error("reading home screen", "err", err)
		fmt.Fprintln(r.output, theme.NoticeStyle.Render("Your lists are unavailable right now."))
		return cli.Exit("", 1)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.output, theme.HeaderStyle.Render("Lists"))
	if len(rows) == 0 {
		fmt.Fprintln(r.output, theme.HelpStyle.Render("No lists yet. Create one with add-list."))
		return nil
	}
	for _, row := range rows {
		fmt.Fprintln(r.output, theme.Row(row.Icon.Glyph, theme.AccentStyle, row.Title, row.Subtitle))
	}
	return nil
}

// Items prints the tasks of the list given by --list.
func (r *Runner) Items(ctx context.Context, cmd *cli.Command) error {
	listID, err := uuid.Parse(cmd.String("list"))
	if err != nil {
		return fmt.Errorf("invalid list id: %w", err)
	}

	svc := service.NewTaskItemsService[icon.Icon](listID, r.items, icon.Service{})
	infos, err := svc.ReadTaskItems(ctx)
	if errors.Is(err, service.ErrReadFromRepository) {
		r.logger.Error("reading tasks", "list", listID, "err", err)
		fmt.Fprintln(r.output, theme.NoticeStyle.Render("Tasks are unavailable right now."))
		return cli.Exit("", 1)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.output, theme.HeaderStyle.Render("Tasks"))
	for _, it := range infos {
		fmt.Fprintln(r.output, theme.Row(
			it.Icon.Glyph,
			theme.ActivityStyle(it.Type),
			it.Name,
			it.CreatedAt.Local().Format("Jan 2, 15:04"),
		))
	}
	return nil
}

// AddList creates a tasks list and prints its id.
func (r *Runner) AddList(ctx context.Context, cmd *cli.Command) error {
	kind, err := model.ParseActivityType(cmd.String("type"))
	if err != nil {
		return err
	}
	id, err := r.lists.Create(ctx, cmd.String("name"), kind)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.output, id)
	return nil
}

// AddItem adds a task to the list given by --list and prints its id.
func (r *Runner) AddItem(ctx context.Context, cmd *cli.Command) error {
	listID, err := uuid.Parse(cmd.String("list"))
	if err != nil {
		return fmt.Errorf("invalid list id: %w", err)
	}
	kind, err := model.ParseActivityType(cmd.String("type"))
	if err != nil {
		return err
	}

	item := model.TaskItem{
		ID:        uuid.New(),
		Name:      cmd.String("name"),
		CreatedAt: nowUTC(),
		Type:      kind,
		ListID:    listID,
	}
	if err := r.items.Insert(ctx, item, listID); err != nil {
		return err
	}
	fmt.Fprintln(r.output, item.ID)
	return nil
}

var seedLists = []struct {
	name  string
	kind  model.ActivityType
	tasks []string
}{
	{"Trip to Lisbon", model.ActivityAirplane, []string{"Book flights", "Pack", "Check in online"}},
	{"Leg day", model.ActivityGym, []string{"Squats", "Lunges"}},
	{"Groceries", model.ActivityShop, nil},
}

// Seed inserts a few sample lists and tasks.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	for _, s := range seedLists {
		listID, err := r.lists.Create(ctx, s.name, s.kind)
		if err != nil {
			return err
		}
		for _, name := range s.tasks {
			item := model.TaskItem{ID: uuid.New(), Name: name, CreatedAt: nowUTC(), Type: s.kind}
			if err := r.items.Insert(ctx, item, listID); err != nil {
				return err
			}
		}
	}
	r.logger.Info("seeded store", "lists", len(seedLists))
	return nil
}
