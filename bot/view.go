// Package bot implements the interactive assistant: command handlers,
// the presentation interface, and the read-eval-print loop.
package bot

import (
	"fmt"
	"io"

	"contactbook/model"
)

// View is the presentation boundary. The bot depends only on these
// three operations, so a different front end can replace the console
// without touching handler logic.
type View interface {
	// ShowMessage displays a single result or status line.
	ShowMessage(text string)
	// ShowContacts renders each record on its own line.
	ShowContacts(records []*model.Record)
	// ShowCommands prints the static help text.
	ShowCommands()
}

var helpLines = []string{
	"add [name] [phone]: Add a new contact with name and phone or update phone for existing contact.",
	"change [name] [old phone] [new phone]: Change the phone number for the specified contact.",
	"phone [name]: Show the phone number for the specified contact.",
	"all: Show all contacts in the address book.",
	"add-birthday [name] [birthday]: Add a birthday for the specified contact.",
	"show-birthday [name]: Show the birthday for the specified contact.",
	"birthdays: Show upcoming birthdays within the next week.",
	"hello: Get a greeting from the bot.",
	"close or exit: Close the application.",
}

// ConsoleView is a View that writes plain lines to out.
type ConsoleView struct {
	out io.Writer
}

// NewConsoleView creates a console view writing to out.
func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

func (v *ConsoleView) ShowMessage(text string) {
	fmt.Fprintln(v.out, text)
}

func (v *ConsoleView) ShowContacts(records []*model.Record) {
	for _, rec := range records {
		fmt.Fprintln(v.out, rec)
	}
}

func (v *ConsoleView) ShowCommands() {
	for _, line := range helpLines {
		fmt.Fprintln(v.out, line)
	}
}
