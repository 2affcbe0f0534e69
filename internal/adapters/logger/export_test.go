// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessages returns the messages of collected entries.
func EntryMessages(entries []errorEntry) []string {
	messages := make([]string, len(entries))
	for i, e := range entries {
		messages[i] = e.message
	}
	return messages
}
