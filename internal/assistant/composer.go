// internal/assistant/composer.go
package assistant

import "fmt"

// ComposePrompt merges the fact sheet and the literal question into the
// instruction text sent to the generation backend. The question is
// embedded verbatim; the fact sheet is never truncated here.
func ComposePrompt(question, factSheet string) string {
	return fmt.Sprintf(
		"You are a smart assistant for the NessCute restaurant. "+
			"Answer the customer's question using only the following menu information:\n\n"+
			"%s\n\n"+
			"Customer question: %s\n\n"+
			"Answer in a clear, friendly and concise way in English. "+
			"If you do not have enough information, say so politely.",
		factSheet, question,
	)
}
