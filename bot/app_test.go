package bot

import (
	"context"
	"strings"
	"testing"

	"contactbook/model"
)

// testView captures everything the app renders.
type testView struct {
	messages     []string
	contactLists [][]*model.Record
	helpShown    int
}

func (v *testView) ShowMessage(text string) {
	v.messages = append(v.messages, text)
}

func (v *testView) ShowContacts(records []*model.Record) {
	v.contactLists = append(v.contactLists, records)
}

func (v *testView) ShowCommands() {
	v.helpShown++
}

// memoryStore is a BookStore double recording saves.
type memoryStore struct {
	saved     *model.AddressBook
	saveCalls int
}

func (s *memoryStore) Load(ctx context.Context) (*model.AddressBook, error) {
	if s.saved == nil {
		return model.NewAddressBook(), nil
	}
	return s.saved, nil
}

func (s *memoryStore) Save(ctx context.Context, book *model.AddressBook) error {
	s.saved = book
	s.saveCalls++
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

func (v *testView) hasMessage(text string) bool {
	for _, msg := range v.messages {
		if msg == text {
			return true
		}
	}
	return false
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		command  string
		argCount int
	}{
		{name: "command with args", line: "add John 1234567890", command: "add", argCount: 2},
		{name: "bare command", line: "birthdays", command: "birthdays", argCount: 0},
		{name: "extra whitespace", line: "  phone   John  ", command: "phone", argCount: 1},
		{name: "blank line", line: "   ", command: "", argCount: 0},
		{name: "empty line", line: "", command: "", argCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := parseInput(tt.line)
			if command != tt.command {
				t.Errorf("expected command %q, got %q", tt.command, command)
			}
			if len(args) != tt.argCount {
				t.Errorf("expected %d args, got %d", tt.argCount, len(args))
			}
		})
	}
}

func runScript(t *testing.T, script string) (*testView, *memoryStore) {
	t.Helper()
	view := &testView{}
	store := &memoryStore{}
	book := model.NewAddressBook()
	app := NewApp(book, store, view)

	if err := app.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return view, store
}

func TestRunSession(t *testing.T) {
	script := strings.Join([]string{
		"hello",
		"add John 1234567890",
		"add John 1234567890",
		"phone John",
		"add-birthday Alice 15.08.1995",
		"all",
		"nonsense",
		"",
		"exit",
	}, "\n")

	view, store := runScript(t, script)

	for _, want := range []string{
		"Welcome to the assistant bot!",
		"How can I help you?",
		"Contact added.",
		"Contact updated.",
		"John: 1234567890, 1234567890",
		"Contact not found.",
		"Invalid command.",
		"Goodbye!",
	} {
		if !view.hasMessage(want) {
			t.Errorf("expected message %q, messages: %v", want, view.messages)
		}
	}

	if view.helpShown != 1 {
		t.Errorf("expected help shown once, got %d", view.helpShown)
	}

	if len(view.contactLists) != 1 {
		t.Fatalf("expected one contact listing, got %d", len(view.contactLists))
	}
	if len(view.contactLists[0]) != 1 {
		t.Errorf("expected 1 contact in listing, got %d", len(view.contactLists[0]))
	}

	if store.saveCalls != 1 {
		t.Errorf("expected one save on exit, got %d", store.saveCalls)
	}
	if store.saved == nil || store.saved.Find("John") == nil {
		t.Error("expected John in the saved book")
	}
}

func TestRunClose(t *testing.T) {
	view, store := runScript(t, "close\n")

	if !view.hasMessage("Goodbye!") {
		t.Error("expected goodbye message")
	}
	if store.saveCalls != 1 {
		t.Errorf("expected one save on close, got %d", store.saveCalls)
	}
}

func TestRunEndOfInput(t *testing.T) {
	// Stream close without exit still persists the book.
	view, store := runScript(t, "add John 1234567890\n")

	if !view.hasMessage("Goodbye!") {
		t.Error("expected goodbye message on end of input")
	}
	if store.saveCalls != 1 {
		t.Errorf("expected one save on end of input, got %d", store.saveCalls)
	}
	if store.saved == nil || store.saved.Find("John") == nil {
		t.Error("expected John in the saved book")
	}
}

func TestRunUnknownCommandChangesNothing(t *testing.T) {
	_, store := runScript(t, "frobnicate John 1234567890\nexit\n")

	if store.saved.Len() != 0 {
		t.Errorf("expected empty saved book, got %d records", store.saved.Len())
	}
}
