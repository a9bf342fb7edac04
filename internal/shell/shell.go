package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chzyer/readline"

	"github.com/nerrad567/device-inventory/internal/auth"
	"github.com/nerrad567/device-inventory/internal/device"
	"github.com/nerrad567/device-inventory/internal/discovery"
)

// ErrUnknownCommand is returned by Execute for an unrecognised command.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is returned by Execute when a command's arguments are wrong.
var ErrUsage = errors.New("usage")

// BrowseFunc finds inventory servers on the local network.
type BrowseFunc func(ctx context.Context) ([]discovery.Instance, error)

// Shell runs inventory commands against a Manager.
type Shell struct {
	manager *device.Manager
	out     io.Writer
	browse  BrowseFunc
}

// New returns a shell writing its output to out.
func New(manager *device.Manager, out io.Writer) *Shell {
	return &Shell{manager: manager, out: out}
}

// SetBrowser enables the discover command.
func (s *Shell) SetBrowser(fn BrowseFunc) {
	s.browse = fn
}

// Run reads commands interactively until exit, EOF or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "inventory> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}

		exit, err := s.Execute(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if exit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	args, err := SplitArgs(strings.TrimSpace(line))
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "create", "add":
		err = s.cmdCreate(ctx, args)
	case "get", "show":
		err = s.cmdGet(ctx, args)
	case "list", "ls":
		err = s.cmdList(ctx, args)
	case "update", "set":
		err = s.cmdUpdate(ctx, args)
	case "delete", "rm":
		err = s.cmdDelete(ctx, args)
	case "stats":
		err = s.cmdStats(ctx)
	case "hashpw":
		err = s.cmdHashPassword(args)
	case "discover":
		err = s.cmdDiscover(ctx)
	case "exit", "quit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCommand, cmd)
	}
	return false, err
}

func (s *Shell) cmdCreate(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: create <name> <brand> [state]", ErrUsage)
	}

	var state *string
	if len(args) == 3 {
		state = &args[2]
	}

	d, err := s.manager.Create(ctx, args[0], args[1], state)
	if err != nil {
		return err
	}
	s.printDevice(d)
	return nil
}

func (s *Shell) cmdGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get <id>", ErrUsage)
	}

	d, err := s.manager.Get(ctx, args[0])
	if err != nil {
		return err
	}
	s.printDevice(d)
	return nil
}

func (s *Shell) cmdList(ctx context.Context, args []string) error {
	pairs, err := splitPairs(args)
	if err != nil {
		return fmt.Errorf("%w: list [brand=<brand>] [state=<state>]: %v", ErrUsage, err)
	}

	var filter device.Filter
	for key, value := range pairs {
		switch key {
		case "brand":
			filter.Brand = &value
		case "state":
			filter.State = &value
		default:
			return fmt.Errorf("%w: unknown filter %q", ErrUsage, key)
		}
	}

	devices, err := s.manager.List(ctx, filter)
	if err != nil {
		return err
	}
	s.printTable(devices)
	return nil
}

func (s *Shell) cmdUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: update <id> [name=<name>] [brand=<brand>] [state=<state>]", ErrUsage)
	}
	pairs, err := splitPairs(args[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var changes device.Changes
	for key, value := range pairs {
		switch key {
		case "name":
			changes.Name = &value
		case "brand":
			changes.Brand = &value
		case "state":
			changes.State = &value
		default:
			return fmt.Errorf("%w: unknown field %q", ErrUsage, key)
		}
	}

	d, err := s.manager.Update(ctx, args[0], changes)
	if err != nil {
		return err
	}
	s.printDevice(d)
	return nil
}

func (s *Shell) cmdDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", ErrUsage)
	}
	if err := s.manager.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "deleted %s\n", args[0])
	return nil
}

func (s *Shell) cmdStats(ctx context.Context) error {
	stats, err := s.manager.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "total: %d\n", stats.Total)
	for _, state := range device.AllStates() {
		fmt.Fprintf(s.out, "  %-10s %d\n", state, stats.ByState[state])
	}
	return nil
}

func (s *Shell) cmdHashPassword(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: hashpw <password>", ErrUsage)
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, hash)
	return nil
}

func (s *Shell) cmdDiscover(ctx context.Context) error {
	if s.browse == nil {
		return errors.New("discovery is not available")
	}

	instances, err := s.browse(ctx)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Fprintln(s.out, "no inventory servers found")
		return nil
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSITE\tVERSION\tURL")
	for _, inst := range instances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", inst.Name, inst.SiteID, inst.Version, inst.BaseURL())
	}
	return tw.Flush()
}

func (s *Shell) printDevice(d *device.Device) {
	fmt.Fprintf(s.out, "id:         %s\n", d.ID)
	fmt.Fprintf(s.out, "name:       %s\n", d.Name)
	fmt.Fprintf(s.out, "brand:      %s\n", d.Brand)
	fmt.Fprintf(s.out, "state:      %s\n", d.State)
	fmt.Fprintf(s.out, "created_at: %s\n", d.CreatedAt.UTC().Format(time.RFC3339))
}

func (s *Shell) printTable(devices []device.Device) {
	if len(devices) == 0 {
		fmt.Fprintln(s.out, "no devices")
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tSTATE\tCREATED")
	for _, d := range devices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Brand, d.State, d.CreatedAt.UTC().Format(time.RFC3339))
	}
	tw.Flush() //nolint:errcheck // output is best effort
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Inventory Commands:
  Devices:
    create <name> <brand> [state]        - Add a device (state defaults to AVAILABLE)
    get <id>                             - Show one device
    list [brand=<b>] [state=<s>]         - List devices, brand filter wins
    update <id> [name=] [brand=] [state=] - Change fields (name/brand locked while IN_USE)
    delete <id>                          - Remove a device that is not IN_USE
    stats                                - Count devices per state

  Tools:
    hashpw <password>                    - Print an argon2id hash for the config file
    discover                             - Find inventory servers via mDNS

  General:
    help                                 - Show this help
    exit                                 - Leave the shell`)
}

func completer() *readline.PrefixCompleter {
	states := []readline.PrefixCompleterInterface{}
	for _, st := range device.AllStates() {
		states = append(states, readline.PcItem("state="+string(st)))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("create"),
		readline.PcItem("get"),
		readline.PcItem("list", append(states, readline.PcItem("brand="))...),
		readline.PcItem("update"),
		readline.PcItem("delete"),
		readline.PcItem("stats"),
		readline.PcItem("hashpw"),
		readline.PcItem("discover"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
