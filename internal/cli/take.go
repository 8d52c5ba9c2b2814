package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/spf13/cobra"
)

const scaleHint = "1 = helemaal oneens, 5 = helemaal eens"

var errAborted = errors.New("assessment aborted")

// readValue prompts until the user enters a value in 1..5 or "q".
func readValue(in *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}

		text := strings.TrimSpace(in.Text())
		switch {
		case text == "":
			continue
		case strings.EqualFold(text, "q"):
			return 0, errAborted
		}

		v, err := strconv.Atoi(text)
		if err != nil || v < 1 || v > 5 {
			fmt.Fprintln(out, errorStyle.Render("enter a number from 1 to 5, or q to stop"))
			continue
		}
		return v, nil
	}
}

func newTakeCommand(rt *cliEnv) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer the questionnaire interactively and show the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ctx, cancel := rt.requestContext(cmd)
			questions, err := rt.client.ListQuestions(ctx, &pb.ListQuestionsRequest{})
			cancel()
			if err != nil {
				return err
			}

			ctx, cancel = rt.requestContext(cmd)
			started, err := rt.client.StartAssessment(ctx, &pb.StartAssessmentRequest{UserID: userID})
			cancel()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, titleStyle.Render("MBTI assessment"))
			fmt.Fprintln(out, mutedStyle.Render(scaleHint))

			in := bufio.NewScanner(cmd.InOrStdin())
			total := len(questions.Questions)
			for i, q := range questions.Questions {
				fmt.Fprintf(out, "\n%s %s\n", mutedStyle.Render(fmt.Sprintf("[%d/%d]", i+1, total)), q.Text)

				value, err := readValue(in, out, promptStyle.Render("> "))
				if err != nil {
					fmt.Fprintf(out, "\nsession %s left open\n", started.SessionID)
					return err
				}

				ctx, cancel := rt.requestContext(cmd)
				_, err = rt.client.SubmitAnswer(ctx, &pb.SubmitAnswerRequest{SessionID: started.SessionID, QuestionID: q.ID, Value: value})
				cancel()
				if err != nil {
					return err
				}
			}

			ctx, cancel = rt.requestContext(cmd)
			defer cancel()
			completed, err := rt.client.CompleteAssessment(ctx, &pb.SessionRequest{SessionID: started.SessionID})
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			return rt.emit(out, completed, func() { renderResult(out, completed.Result) })
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "owner of the result")
	return cmd
}
