package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/state"
)

const (
	CommandSpymaster = "s"
	CommandOperative = "o"
	CommandDrawer    = "d"
	CommandLeave     = "l"
	CommandDismiss   = "x"
	CommandHelp      = "?"
)

const helpText = `commands:
  s  show the key (spymaster)
  o  hide the key (operative)
  d  toggle the drawer
  l  leave the game and clear the board
  x  dismiss the notice
  ?  show this help
`

// Store is the subset of the state store driven by local commands.
type Store interface {
	Session() state.Session
	SetDrawerOpen(open bool)
	RevealSpymaster()
	ForgetSpymaster()
	ResetRoom()
	IncrementPopupHides()
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

func IsUnknownCommand(err error) bool {
	_, ok := err.(*ErrUnknownCommand)
	return ok
}

// CommandHandler maps typed commands to store operations.
type CommandHandler struct {
	store Store
	out   io.Writer
}

type NewCommandHandlerOptions struct {
	Store Store
	// Out receives the help text, defaults to io.Discard
	Out io.Writer
}

func NewCommandHandler(opts NewCommandHandlerOptions) *CommandHandler {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &CommandHandler{
		store: opts.Store,
		out:   opts.Out,
	}
}

// HandleCommand runs a single command line. Blank lines are ignored.
func (h *CommandHandler) HandleCommand(line string) error {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return nil
	case CommandSpymaster:
		h.store.RevealSpymaster()
	case CommandOperative:
		h.store.ForgetSpymaster()
	case CommandDrawer:
		h.store.SetDrawerOpen(!h.store.Session().Drawer)
	case CommandLeave:
		h.store.ResetRoom()
	case CommandDismiss:
		h.store.IncrementPopupHides()
	case CommandHelp:
		if _, err := io.WriteString(h.out, helpText); err != nil {
			return fmt.Errorf("failed to write help: %v", err)
		}
	default:
		return &ErrUnknownCommand{Command: command}
	}
	log.Debug("Handled command %q", command)
	return nil
}

// Run reads commands from r, one per line, until r is exhausted or ctx is
// done. Unknown commands are logged and skipped.
func (h *CommandHandler) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read commands: %v", err)
			}
			return nil
		case line := <-lines:
			if err := h.HandleCommand(line); err != nil {
				if IsUnknownCommand(err) {
					log.Warn("%v, type %s for help", err, CommandHelp)
					continue
				}
				return err
			}
		}
	}
}
