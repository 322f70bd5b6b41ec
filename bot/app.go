package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"contactbook/model"
	"contactbook/store"
)

// App drives the read-eval-print loop over one address book. One
// command is fully processed before the next line is read; the book is
// persisted once, on graceful shutdown.
type App struct {
	book  *model.AddressBook
	store store.BookStore
	view  View
}

// NewApp creates an app over the given book, store, and view.
func NewApp(book *model.AddressBook, bookStore store.BookStore, view View) *App {
	return &App{
		book:  book,
		store: bookStore,
		view:  view,
	}
}

// parseInput splits a line into a command token and argument tokens.
// A blank line yields an empty command.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

// executeCommand dispatches one command and reports whether the loop
// should continue. Unrecognized commands change no state.
func (a *App) executeCommand(ctx context.Context, command string, args []string) (bool, error) {
	switch command {
	case "add":
		a.view.ShowMessage(isolate(addContact)(args, a.book))
	case "change":
		a.view.ShowMessage(isolate(changePhone)(args, a.book))
	case "phone":
		a.view.ShowMessage(isolate(showPhone)(args, a.book))
	case "all":
		a.view.ShowContacts(a.book.Records())
	case "add-birthday":
		a.view.ShowMessage(isolate(addBirthday)(args, a.book))
	case "show-birthday":
		a.view.ShowMessage(isolate(showBirthday)(args, a.book))
	case "birthdays":
		a.view.ShowMessage(isolate(upcomingBirthdays)(args, a.book))
	case "hello":
		a.view.ShowMessage("How can I help you?")
	case "close", "exit":
		if err := a.store.Save(ctx, a.book); err != nil {
			return false, fmt.Errorf("failed to save address book: %w", err)
		}
		a.view.ShowMessage("Goodbye!")
		return false, nil
	default:
		a.view.ShowMessage("Invalid command.")
	}
	return true, nil
}

// Run reads commands from in until close/exit or end of input. End of
// input is treated as an implicit exit, so the book is saved either
// way.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.view.ShowMessage("Welcome to the assistant bot!")
	a.view.ShowCommands()

	scanner := bufio.NewScanner(in)
	for {
		a.view.ShowMessage("Enter a command: ")
		if !scanner.Scan() {
			break
		}
		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}
		cont, err := a.executeCommand(ctx, command, args)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Implicit exit on stream close.
	if err := a.store.Save(ctx, a.book); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	a.view.ShowMessage("Goodbye!")
	return nil
}
