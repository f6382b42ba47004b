// Package shell implements the nested text menus of the restaurant manager.
//
// The shell is a state machine over four screens. Every screen reads one line,
// dispatches on an exact option code and either runs an action or moves to
// another screen. "0" always returns to the parent screen and leaves the
// program from the main screen.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/franciscosanchezn/restaurant-manager/internal/output"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	log "github.com/sirupsen/logrus"
)

// State identifies the screen the shell is showing
type State int

const (
	StateMain State = iota
	StateMenu
	StateInventory
	StateData
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateMenu:
		return "menu"
	case StateInventory:
		return "inventory"
	case StateData:
		return "data"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Services bundles what the shell dispatches to
type Services struct {
	Orders    services.OrderService
	Menu      services.MenuService
	Inventory services.InventoryService
	Reports   services.ReportService
	Queries   services.QueryService
}

// Options tunes the listings of the shell
type Options struct {
	LowStockThreshold int
	RecentOrdersLimit int
}

type action func(ctx context.Context) error

// option is one entry of a screen; it either runs an action or moves to next
type option struct {
	code   string
	label  string
	run    action
	next   State
	leaves bool
}

type screen struct {
	title   string
	options []option
}

// Shell reads choices from in and writes everything to out
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	svc     Services
	opts    Options
	state   State
	screens map[State]screen
}

// New creates a shell positioned on the main screen
func New(in io.Reader, out io.Writer, svc Services, opts Options) *Shell {
	if opts.LowStockThreshold < 0 {
		opts.LowStockThreshold = 10
	}
	if opts.RecentOrdersLimit <= 0 {
		opts.RecentOrdersLimit = 20
	}
	s := &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		svc:   svc,
		opts:  opts,
		state: StateMain,
	}
	s.screens = s.transitions()
	return s
}

// transitions is the full screen table
func (s *Shell) transitions() map[State]screen {
	return map[State]screen{
		StateMain: {
			title: "Main Menu",
			options: []option{
				{code: "1", label: "Print Menu", run: s.printMenu},
				{code: "2", label: "Place Order", run: s.placeOrder},
				{code: "3", label: "Look Up Recent Orders", run: s.recentOrders},
				{code: "4", label: "Menu Options", next: StateMenu, leaves: true},
				{code: "5", label: "Inventory Options", next: StateInventory, leaves: true},
				{code: "6", label: "Data Options", next: StateData, leaves: true},
				{code: "0", label: "Exit", next: StateExit, leaves: true},
			},
		},
		StateMenu: {
			title: "Menu Options",
			options: []option{
				{code: "1", label: "Update Prices", run: s.updatePrice},
				{code: "2", label: "Add Item", run: s.addItem},
				{code: "3", label: "Remove Item", run: s.removeItem},
				{code: "0", label: "Back", next: StateMain, leaves: true},
			},
		},
		StateInventory: {
			title: "Inventory Options",
			options: []option{
				{code: "1", label: "List Inventory", run: s.listInventory},
				{code: "2", label: "List Suppliers", run: s.listSuppliers},
				{code: "3", label: "List Low Ingredients", run: s.lowIngredients},
				{code: "4", label: "Order Ingredients", run: s.orderIngredients},
				{code: "0", label: "Back", next: StateMain, leaves: true},
			},
		},
		StateData: {
			title: "Data Options",
			options: []option{
				{code: "1", label: "Check Sales Information", run: s.salesInfo},
				{code: "2", label: "Plot Sales Data", run: s.plotSales},
				{code: "3", label: "Plot Menu Data", run: s.plotMenu},
				{code: "4", label: "Submit Custom Query", run: s.customQuery},
				{code: "0", label: "Back", next: StateMain, leaves: true},
			},
		},
	}
}

// State returns the current screen
func (s *Shell) State() State {
	return s.state
}

// Run loops until the operator exits or the input ends.
// Action failures are reported and the current screen is shown again.
func (s *Shell) Run(ctx context.Context) error {
	for s.state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := s.screens[s.state]
		s.render(current)

		choice, err := s.prompt("Enter your choice: ")
		if err == nil {
			err = s.dispatch(ctx, current, choice)
		}
		if errors.Is(err, io.EOF) {
			log.Debug("Input closed, leaving shell")
			return nil
		}
		if err != nil {
			return err
		}
	}
	output.Line(s.out, "Goodbye!")
	return nil
}

// dispatch only returns errors that should stop the shell; other failures
// are printed
func (s *Shell) dispatch(ctx context.Context, current screen, choice string) error {
	for _, opt := range current.options {
		if opt.code != choice {
			continue
		}
		if opt.leaves {
			log.WithFields(log.Fields{"from": s.state, "to": opt.next}).Debug("Shell transition")
			s.state = opt.next
			return nil
		}
		err := opt.run(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return err
		}
		if err != nil {
			s.report(err)
		}
		return nil
	}
	output.Error(s.out, "Invalid choice. Please try again.")
	return nil
}

func (s *Shell) render(current screen) {
	output.Section(s.out, current.title+":")
	for _, opt := range current.options {
		output.Line(s.out, "%s: %s", opt.code, opt.label)
	}
	output.Line(s.out, "")
}

// report prints the failure of an action
func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, services.ErrDishNotFound):
		output.Warning(s.out, "Dish not found. Please check the dish name and try again.")
	case errors.Is(err, services.ErrIngredientNotFound):
		output.Warning(s.out, "Ingredient not found. Please check the ingredient name and try again.")
	case errors.Is(err, errInvalidNumber):
		output.Error(s.out, "%v", err)
	default:
		log.WithError(err).Error("Shell action failed")
		output.Error(s.out, "Operation failed: %v", err)
	}
}

// prompt writes label and reads one line without its terminator
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), nil
}
