package menu

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

// scriptedPrompter answers prompts from a fixed list, then aborts
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) next(title string) (string, error) {
	p.asked = append(p.asked, title)
	if len(p.answers) == 0 {
		return "", ErrAborted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Choose(_ context.Context, title string, _ []Option) (string, error) {
	return p.next(title)
}

func (p *scriptedPrompter) Input(_ context.Context, title, _ string, _ func(string) error) (string, error) {
	return p.next(title)
}

func setupDispatcher(t *testing.T, answers ...string) (*Dispatcher, *app.App, *bytes.Buffer) {
	t.Helper()

	p, _ := testutil.SetupTestProvider(t)
	a := app.New(p, app.WithLogger(logging.Discard()))

	var out bytes.Buffer
	d := New(a, &scriptedPrompter{answers: answers}, &out)
	return d, a, &out
}

func TestRunContactScenario(t *testing.T) {
	d, _, out := setupDispatcher(t,
		"1", "Alice", "555-1000",
		"5", "Alice",
		"3", "Alice", "555-2000",
		"5", "Alice",
		"6", "Alice",
		"5", "Alice",
		"8",
	)

	require.NoError(t, d.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "User added!")
	assert.Contains(t, got, "555-1000")
	assert.Contains(t, got, "User updated! (1 rows matched)")
	assert.Contains(t, got, "555-2000")
	assert.Contains(t, got, "User deleted! (1 rows removed)")
	assert.Contains(t, got, "No user found with that name.")
	assert.Contains(t, got, "Exiting the program.")
}

func TestRunInvalidChoiceRedisplaysMenu(t *testing.T) {
	d, _, out := setupDispatcher(t, "9", "abc", "8")

	require.NoError(t, d.Run(context.Background()))

	got := out.String()
	assert.Equal(t, 2, bytes.Count([]byte(got), []byte("Invalid choice. Please try again.")))
	assert.Equal(t, 3, bytes.Count([]byte(got), []byte(menuTitle)))
	assert.Contains(t, got, "Exiting the program.")
}

func TestRunViewAll(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		d, _, out := setupDispatcher(t, "4", "8")
		require.NoError(t, d.Run(context.Background()))
		assert.Contains(t, out.String(), "The phonebook is empty.")
	})

	t.Run("imported rows", func(t *testing.T) {
		path := testutil.WriteFile(t, "contacts.csv", "name,phone\nAnn,100\nBen,200\n")
		d, _, out := setupDispatcher(t, "2", path, "4", "8")

		require.NoError(t, d.Run(context.Background()))

		got := out.String()
		assert.Contains(t, got, "CSV data imported! (2 rows)")
		assert.Contains(t, got, "Ann")
		assert.Contains(t, got, "200")
	})
}

func TestRunReportsFailuresAndContinues(t *testing.T) {
	t.Run("missing import file", func(t *testing.T) {
		d, _, out := setupDispatcher(t, "2", filepath.Join(t.TempDir(), "nope.csv"), "8")

		require.NoError(t, d.Run(context.Background()))

		got := out.String()
		assert.Contains(t, got, "Error:")
		assert.Contains(t, got, "io error")
		assert.Contains(t, got, "Check the file path")
		assert.Contains(t, got, "Exiting the program.")
	})

	t.Run("unreachable store", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "missing", "phonebook.db"),
		}
		a := app.New(database.NewProvider(cfg, logging.Discard()), app.WithLogger(logging.Discard()))

		var out bytes.Buffer
		d := New(a, &scriptedPrompter{answers: []string{"4", "1", "Alice", "1", "8"}}, &out)

		require.NoError(t, d.Run(context.Background()))

		got := out.String()
		assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("connection error")))
		assert.Contains(t, got, "Check the database settings")
		assert.Contains(t, got, "Exiting the program.")
	})
}

func TestRunGame(t *testing.T) {
	d, a, out := setupDispatcher(t,
		"7", "bob", "42", "3",
		"7", "bob", "10", "2",
		"8",
	)

	require.NoError(t, d.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "User bob created with ID 1.")
	assert.Contains(t, got, "Welcome back, bob!")
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Score saved!")))

	scores, err := a.GameService.GetScores(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 42, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
}

func TestRunGameDefaultUsername(t *testing.T) {
	d, _, out := setupDispatcher(t, "7", "", "5", "1", "8")
	d.defaultUsername = func() string { return "tester" }

	require.NoError(t, d.Run(context.Background()))
	assert.Contains(t, out.String(), "User tester created with ID 1.")
}

func TestRunGameRejectsNonNumericScore(t *testing.T) {
	d, a, out := setupDispatcher(t, "7", "bob", "lots", "1", "8")

	require.NoError(t, d.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "validation error")
	assert.Contains(t, got, "Please enter a valid value.")
	assert.NotContains(t, got, "Score saved!")
	assert.Contains(t, got, "Exiting the program.")

	scores, err := a.GameService.GetScores(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestRunAbortedInput(t *testing.T) {
	// Script ends mid-action: the action is cancelled, then the menu exits
	d, _, out := setupDispatcher(t, "1", "Alice")

	require.NoError(t, d.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Cancelled.")
	assert.Contains(t, got, "Exiting the program.")
	assert.NotContains(t, got, "User added!")
}

func TestRunCancelledContext(t *testing.T) {
	d, _, out := setupDispatcher(t, "4")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx))
	assert.Contains(t, out.String(), "Exiting the program.")
	assert.NotContains(t, out.String(), menuTitle)
}

func TestDispatchInvalidChoice(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	err := d.Dispatch(context.Background(), "0")
	assert.True(t, errors.Is(err, ErrInvalidChoice))
}

func TestDispatchTrimsChoice(t *testing.T) {
	d, _, out := setupDispatcher(t)

	require.NoError(t, d.Dispatch(context.Background(), " 4 \n"))
	assert.Contains(t, out.String(), "The phonebook is empty.")
}

func TestOptionsCoverEveryChoice(t *testing.T) {
	require.Len(t, Options, 8)
	for i, o := range Options {
		assert.Equal(t, string(rune('1'+i)), o.Key)
		assert.NotEmpty(t, o.Label)
	}
}
