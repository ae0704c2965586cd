package feedback

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a supportive instructor reviewing a learner's attempt at an assessment. Write a short message the learner sees right after submitting the last question. Do not reveal correct answers. Plain text only.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment: %s\n", in.Title)
	fmt.Fprintf(&b, "Score: %d%%\n", in.Score)
	if in.MaxAttempts > 0 {
		fmt.Fprintf(&b, "Attempt: %d of %d\n", in.Attempt, in.MaxAttempts)
	} else {
		fmt.Fprintf(&b, "Attempt: %d (unlimited)\n", in.Attempt)
	}

	b.WriteString("\nQuestions:\n")
	if len(in.Questions) == 0 {
		b.WriteString("None\n")
	}
	for _, q := range in.Questions {
		fmt.Fprintf(&b, "%d. %s [%s]\n", q.Number, q.Question, q.Status)
	}

	if in.Instructor != "" {
		fmt.Fprintf(&b, "\nInstructor's note for this point: %s\n", in.Instructor)
	}
	return b.String()
}
