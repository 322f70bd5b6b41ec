package bot

import (
	"fmt"
	"strings"

	"contactbook/model"
)

// upcomingWindowDays is the lookahead used by the birthdays command.
const upcomingWindowDays = 7

// MissingArgumentError reports a command invoked with too few
// arguments.
type MissingArgumentError struct {
	Want int
	Got  int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("expected at least %d arguments, got %d", e.Want, e.Got)
}

// HandlerFunc maps parsed arguments and the address book to a result
// message. Errors describe user mistakes (bad input, missing
// arguments), never internal failures.
type HandlerFunc func(args []string, book *model.AddressBook) (string, error)

// isolate wraps a handler so that every error it returns is converted
// into its message text. Nothing escapes past the handler boundary.
func isolate(h HandlerFunc) func(args []string, book *model.AddressBook) string {
	return func(args []string, book *model.AddressBook) string {
		result, err := h(args, book)
		if err != nil {
			return err.Error()
		}
		return result
	}
}

func requireArgs(args []string, want int) error {
	if len(args) < want {
		return &MissingArgumentError{Want: want, Got: len(args)}
	}
	return nil
}

func addContact(args []string, book *model.AddressBook) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]
	rec := book.Find(name)
	message := "Contact updated."
	if rec == nil {
		rec = model.NewRecord(name)
		book.AddRecord(rec)
		message = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

func changePhone(args []string, book *model.AddressBook) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	rec := book.Find(name)
	if rec == nil {
		return "Contact not found.", nil
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

func showPhone(args []string, book *model.AddressBook) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	name := args[0]
	rec := book.Find(name)
	if rec == nil {
		return "Contact not found.", nil
	}
	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(phones, ", ")), nil
}

func addBirthday(args []string, book *model.AddressBook) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, birthday := args[0], args[1]
	rec := book.Find(name)
	if rec == nil {
		return "Contact not found.", nil
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func showBirthday(args []string, book *model.AddressBook) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	name := args[0]
	rec := book.Find(name)
	if rec == nil {
		return "Contact not found.", nil
	}
	if rec.Birthday == nil {
		return fmt.Sprintf("%s has no birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday is %s", name, rec.Birthday), nil
}

func upcomingBirthdays(args []string, book *model.AddressBook) (string, error) {
	upcoming := book.UpcomingBirthdays(upcomingWindowDays)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(upcoming))
	for i, rec := range upcoming {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n"), nil
}
