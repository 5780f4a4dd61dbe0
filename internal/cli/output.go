package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/phonebook/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// JSONSuccess writes {"success": true, key: data}
func (f *OutputFormatter) JSONSuccess(key string, data interface{}) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// JSONFields writes {"success": true} together with every entry of fields
func (f *OutputFormatter) JSONFields(fields map[string]interface{}) error {
	out := map[string]interface{}{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error: "+message))
	if suggestion != "" {
		fmt.Fprintln(os.Stderr, styles.SubtitleStyle.Render("Suggestion: "+suggestion))
	}
	return nil
}

// Fail reports err in the current output mode and returns it with its exit code attached
func (f *OutputFormatter) Fail(err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), Suggestion(err)); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: ExitCodeFor(err), Err: err}
}
