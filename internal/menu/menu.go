// Package menu runs the numbered console menu. It collects input through a
// Prompter and hands already-parsed values to the services, so every action
// can be driven without a terminal.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	gameservice "github.com/thenoetrevino/phonebook/internal/services/game"
	"github.com/thenoetrevino/phonebook/internal/user"
)

// Menu choices
const (
	ChoiceInsert     = "1"
	ChoiceImport     = "2"
	ChoiceUpdate     = "3"
	ChoiceViewAll    = "4"
	ChoiceSearch     = "5"
	ChoiceDelete     = "6"
	ChoiceGame       = "7"
	ChoiceExit       = "8"
	menuTitle        = "PhoneBook Menu"
	choosePrompt     = "Choose an option"
	noMatchesMessage = "No user found with that name."
)

// ErrInvalidChoice is reported for a selection outside 1-8
var ErrInvalidChoice = errors.New("invalid choice")

// Options lists the menu in display order
var Options = []Option{
	{ChoiceInsert, "Insert (console)"},
	{ChoiceImport, "Insert (CSV)"},
	{ChoiceUpdate, "Update user"},
	{ChoiceViewAll, "View all"},
	{ChoiceSearch, "Search by name"},
	{ChoiceDelete, "Delete user"},
	{ChoiceGame, "Game - Create or find user"},
	{ChoiceExit, "Exit"},
}

// Dispatcher reads one selection per iteration and runs exactly one action
type Dispatcher struct {
	app             *app.App
	prompt          Prompter
	out             io.Writer
	logger          *slog.Logger
	defaultUsername func() string
}

// New creates a dispatcher writing results to out
func New(a *app.App, prompt Prompter, out io.Writer) *Dispatcher {
	return &Dispatcher{
		app:             a,
		prompt:          prompt,
		out:             out,
		logger:          a.Logger(),
		defaultUsername: user.GetCurrentUsername,
	}
}

// Run loops until Exit is chosen, input is aborted, or ctx is cancelled.
// Failed actions are reported and the loop continues.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			d.println(styles.SubtitleStyle.Render("Exiting the program."))
			return nil
		}

		d.println("")
		d.println(styles.RenderCard(styles.TitleStyle.Render(menuTitle)))

		choice, err := d.prompt.Choose(ctx, choosePrompt, Options)
		if err != nil {
			if errors.Is(err, ErrAborted) || ctx.Err() != nil {
				d.println(styles.SubtitleStyle.Render("Exiting the program."))
				return nil
			}
			return err
		}

		if strings.TrimSpace(choice) == ChoiceExit {
			d.println(styles.SubtitleStyle.Render("Exiting the program."))
			return nil
		}

		if err := d.Dispatch(ctx, choice); err != nil {
			if errors.Is(err, ErrAborted) {
				d.println(styles.WarningStyle.Render("Cancelled."))
				continue
			}
			d.reportError(choice, err)
		}
	}
}

// Dispatch runs the action for one menu selection
func (d *Dispatcher) Dispatch(ctx context.Context, choice string) error {
	switch strings.TrimSpace(choice) {
	case ChoiceInsert:
		return d.insertContact(ctx)
	case ChoiceImport:
		return d.importContacts(ctx)
	case ChoiceUpdate:
		return d.updateContact(ctx)
	case ChoiceViewAll:
		return d.viewAll(ctx)
	case ChoiceSearch:
		return d.searchByName(ctx)
	case ChoiceDelete:
		return d.deleteContact(ctx)
	case ChoiceGame:
		return d.playGame(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
}

func (d *Dispatcher) insertContact(ctx context.Context) error {
	name, err := d.ask(ctx, "Enter name:")
	if err != nil {
		return err
	}
	phone, err := d.ask(ctx, "Enter phone:")
	if err != nil {
		return err
	}

	if err := d.app.ContactService.AddContact(ctx, name, phone); err != nil {
		return err
	}
	d.success("User added!")
	return nil
}

func (d *Dispatcher) importContacts(ctx context.Context) error {
	path, err := d.ask(ctx, "Enter CSV file path:")
	if err != nil {
		return err
	}

	n, err := d.app.ContactService.ImportFile(ctx, path)
	if err != nil {
		return err
	}
	d.success(fmt.Sprintf("CSV data imported! (%d rows)", n))
	return nil
}

func (d *Dispatcher) updateContact(ctx context.Context) error {
	name, err := d.ask(ctx, "Enter the name of the user to update:")
	if err != nil {
		return err
	}
	phone, err := d.ask(ctx, "Enter the new phone number:")
	if err != nil {
		return err
	}

	n, err := d.app.ContactService.UpdatePhone(ctx, name, phone)
	if err != nil {
		return err
	}
	d.success(fmt.Sprintf("User updated! (%d rows matched)", n))
	return nil
}

func (d *Dispatcher) viewAll(ctx context.Context) error {
	contacts, err := d.app.ContactService.ListContacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		d.println(styles.SubtitleStyle.Render("The phonebook is empty."))
		return nil
	}
	d.println(styles.RenderContacts(contacts))
	return nil
}

func (d *Dispatcher) searchByName(ctx context.Context) error {
	name, err := d.ask(ctx, "Enter the name to search:")
	if err != nil {
		return err
	}

	contacts, err := d.app.ContactService.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		d.println(styles.WarningStyle.Render(noMatchesMessage))
		return nil
	}
	d.println(styles.RenderContacts(contacts))
	return nil
}

func (d *Dispatcher) deleteContact(ctx context.Context) error {
	name, err := d.ask(ctx, "Enter the name of the user to delete:")
	if err != nil {
		return err
	}

	n, err := d.app.ContactService.DeleteByName(ctx, name)
	if err != nil {
		return err
	}
	d.success(fmt.Sprintf("User deleted! (%d rows removed)", n))
	return nil
}

// playGame resolves the player, then records the session result. Snake
// gameplay itself is not implemented; the result is entered by hand.
func (d *Dispatcher) playGame(ctx context.Context) error {
	fallback := d.defaultUsername()
	username, err := d.prompt.Input(ctx, "Enter your username:", fallback, nil)
	if err != nil {
		return err
	}
	if username == "" {
		username = fallback
	}

	userID, created, err := d.app.GameService.GetOrCreateUser(ctx, username)
	if err != nil {
		return err
	}
	if created {
		d.success(fmt.Sprintf("User %s created with ID %d.", username, userID))
	} else {
		d.success(fmt.Sprintf("Welcome back, %s!", username))
	}

	scoreInput, err := d.prompt.Input(ctx, "Enter your final score:", "0", validateWholeNumber)
	if err != nil {
		return err
	}
	levelInput, err := d.prompt.Input(ctx, "Enter your level:", "1", validateWholeNumber)
	if err != nil {
		return err
	}

	score, level, err := gameservice.ParseScore(scoreInput, levelInput)
	if err != nil {
		return err
	}

	if err := d.app.GameService.SaveScore(ctx, userID, score, level); err != nil {
		return err
	}
	d.success("Score saved!")
	return nil
}

func validateWholeNumber(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func (d *Dispatcher) ask(ctx context.Context, title string) (string, error) {
	return d.prompt.Input(ctx, title, "", nil)
}

// reportError prints a failure and a hint for its kind
func (d *Dispatcher) reportError(choice string, err error) {
	d.logger.Error("menu action failed", "choice", choice, "error", err)

	if errors.Is(err, ErrInvalidChoice) {
		d.println(styles.ErrorStyle.Render("Invalid choice. Please try again."))
		return
	}

	d.println(styles.ErrorStyle.Render("Error: " + err.Error()))
	if hint := hintFor(err); hint != "" {
		d.println(styles.SubtitleStyle.Render(hint))
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, models.ErrConnection):
		return "Check the database settings in your config file."
	case errors.Is(err, models.ErrIO):
		return "Check the file path and that each row has a name and a phone."
	case errors.Is(err, models.ErrValidation):
		return "Please enter a valid value."
	default:
		return ""
	}
}

func (d *Dispatcher) success(msg string) {
	d.println(styles.SuccessStyle.Render(msg))
}

func (d *Dispatcher) println(s string) {
	fmt.Fprintln(d.out, s)
}
