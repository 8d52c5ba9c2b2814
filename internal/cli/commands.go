package cli

import (
	"fmt"
	"strconv"

	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/spf13/cobra"
)

func newQuestionsCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.ListQuestions(ctx, &pb.ListQuestionsRequest{})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderQuestions(cmd.OutOrStdout(), resp.Questions) })
		},
	}
}

func newStartCommand(rt *cliEnv) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a new assessment session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.StartAssessment(ctx, &pb.StartAssessmentRequest{UserID: userID})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "session %s (%d questions)\n", resp.SessionID, resp.TotalQuestions)
			})
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "owner of the session's result")
	return cmd
}

func newAnswerCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "answer SESSION QUESTION VALUE",
		Short: "Record a 1-5 answer to a question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			questionID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("question id %q is not a number", args[1])
			}
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("value %q is not a number", args[2])
			}

			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.SubmitAnswer(ctx, &pb.SubmitAnswerRequest{SessionID: args[0], QuestionID: questionID, Value: value})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "progress %d%%\n", resp.Progress)
			})
		},
	}
}

func newAnswersCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "answers SESSION",
		Short: "Show the answers recorded in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.GetAnswers(ctx, &pb.SessionRequest{SessionID: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderAnswers(cmd.OutOrStdout(), resp.Answers) })
		},
	}
}

func newProgressCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "progress SESSION",
		Short: "Show how much of a session is answered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.GetProgress(ctx, &pb.SessionRequest{SessionID: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d%%\n", bar(resp.Progress), resp.Progress)
			})
		},
	}
}

func newCompleteCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "complete SESSION",
		Short: "Score a session and store the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.CompleteAssessment(ctx, &pb.SessionRequest{SessionID: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderResult(cmd.OutOrStdout(), resp.Result) })
		},
	}
}

func newResetCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "reset SESSION",
		Short: "Discard every answer in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.ResetAssessment(ctx, &pb.SessionRequest{SessionID: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "session reset")
			})
		},
	}
}

func newResultCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "result RESULT_ID",
		Short: "Show a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.GetResult(ctx, &pb.GetResultRequest{ResultID: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderResult(cmd.OutOrStdout(), resp.Result) })
		},
	}
}

func newHistoryCommand(rt *cliEnv) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history USER",
		Short: "List a user's results, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.ListResults(ctx, &pb.ListResultsRequest{UserID: args[0], Limit: limit})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderHistory(cmd.OutOrStdout(), resp.Results) })
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (server default when 0)")
	return cmd
}

func newProfileCommand(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "profile TYPE",
		Short: "Describe one of the 16 types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.requestContext(cmd)
			defer cancel()

			resp, err := rt.client.GetTypeProfile(ctx, &pb.GetTypeProfileRequest{TypeCode: args[0]})
			if err != nil {
				return err
			}
			return rt.emit(cmd.OutOrStdout(), resp, func() { renderProfile(cmd.OutOrStdout(), resp) })
		},
	}
}
