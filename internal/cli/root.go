// Package cli implements mbtictl, a command-line client for the assessment gRPC API.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	defaultAddr    = "localhost:50051"
	defaultTimeout = 10 * time.Second
	envPrefix      = "MBTICTL"
)

// DialFunc opens a client for addr. The returned closer is called after the command finishes.
type DialFunc func(addr string) (pb.AssessmentClient, io.Closer, error)

func dialGRPC(addr string) (pb.AssessmentClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return pb.NewAssessmentClient(conn), conn, nil
}

type cliEnv struct {
	cfg    *viper.Viper
	dial   DialFunc
	client pb.AssessmentClient
	closer io.Closer
}

type Option func(*cliEnv)

// WithDialer replaces the gRPC dialer, mainly for tests.
func WithDialer(d DialFunc) Option {
	return func(r *cliEnv) { r.dial = d }
}

// NewRootCommand builds the mbtictl command tree.
// The server address comes from --addr, then MBTICTL_ADDR, then the default.
func NewRootCommand(opts ...Option) *cobra.Command {
	rt := &cliEnv{cfg: viper.New(), dial: dialGRPC}
	for _, opt := range opts {
		opt(rt)
	}

	root := &cobra.Command{
		Use:           "mbtictl",
		Short:         "Take and inspect MBTI assessments on an assessment server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := rt.dial(rt.cfg.GetString("addr"))
			if err != nil {
				return err
			}
			rt.client, rt.closer = client, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.closer == nil {
				return nil
			}
			return rt.closer.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("addr", defaultAddr, "assessment server address")
	flags.Duration("timeout", defaultTimeout, "per-request timeout")
	flags.StringP("output", "o", "text", "output format (text|json)")

	rt.cfg.SetEnvPrefix(envPrefix)
	rt.cfg.AutomaticEnv()
	for _, name := range []string{"addr", "timeout", "output"} {
		_ = rt.cfg.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newQuestionsCommand(rt),
		newStartCommand(rt),
		newAnswerCommand(rt),
		newAnswersCommand(rt),
		newProgressCommand(rt),
		newCompleteCommand(rt),
		newResetCommand(rt),
		newResultCommand(rt),
		newHistoryCommand(rt),
		newProfileCommand(rt),
		newTakeCommand(rt),
	)
	return root
}

func (rt *cliEnv) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), rt.cfg.GetDuration("timeout"))
}

func (rt *cliEnv) jsonOutput() bool {
	return rt.cfg.GetString("output") == "json"
}

// emit writes v as indented JSON when --output=json, otherwise calls text.
func (rt *cliEnv) emit(w io.Writer, v any, text func()) error {
	if !rt.jsonOutput() {
		text()
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs mbtictl with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// ErrorMessage renders err for a terminal, using the status message for gRPC errors.
func ErrorMessage(err error) string {
	var se interface{ GRPCStatus() *status.Status }
	if errors.As(err, &se) {
		st := se.GRPCStatus()
		return fmt.Sprintf("%s: %s", st.Code(), st.Message())
	}
	return err.Error()
}
