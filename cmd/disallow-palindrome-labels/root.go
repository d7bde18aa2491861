package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/yaml"

	"github.com/numtide/disallow-palindrome-labels/pkg/policy"
)

var version = "dev"

// app carries the state shared by the subcommands of one CLI run.
type app struct {
	zapOpts zap.Options
	logger  logr.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		zapOpts: zap.Options{Development: true},
		logger:  logr.Discard(),
	}

	root := &cobra.Command{
		Use:   "disallow-palindrome-labels",
		Short: "Admission policy rejecting Pods with palindrome label keys",
		Long: `disallow-palindrome-labels evaluates admission requests handed over by a
policy host. A Pod is rejected when one of its label keys reads the same
forwards and backwards; every other resource is accepted.

Payloads are read from --request-path or stdin, results are written to stdout
and logs to stderr.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.zapOpts.DestWriter = cmd.ErrOrStderr()
			a.logger = zap.New(zap.UseFlagOptions(&a.zapOpts))
		},
	}

	zapFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	a.zapOpts.BindFlags(zapFlags)
	root.PersistentFlags().AddGoFlagSet(zapFlags)

	root.AddCommand(
		a.validateCommand(),
		a.validateSettingsCommand(),
		a.protocolVersionCommand(),
		a.metadataCommand(),
	)
	return root
}

func (a *app) validateCommand() *cobra.Command {
	var requestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Evaluate a validation request",
		Example: `  disallow-palindrome-labels validate --request-path request.json
  cat request.json | disallow-palindrome-labels validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readPayload(cmd, requestPath)
			if err != nil {
				return err
			}
			out, err := policy.New(a.logger).Validate(payload)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&requestPath, "request-path", "r", "", "File holding the validation request (default: stdin)")
	return cmd
}

func (a *app) validateSettingsCommand() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "validate-settings",
		Short: "Validate policy settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readPayload(cmd, settingsPath)
			if err != nil {
				return err
			}
			out, err := policy.ValidateSettings(payload)
			if err != nil {
				return fmt.Errorf("settings validation failed: %w", err)
			}
			a.logger.V(1).Info("settings validated", "policy", policy.Name)
			return writeLine(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&settingsPath, "settings-path", "s", "", "File holding the settings (default: stdin)")
	return cmd
}

func (a *app) protocolVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "protocol-version",
		Short: "Print the protocol version understood by the policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := policy.ProtocolVersion()
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}
}

func (a *app) metadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Print the policy registration metadata as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(policy.DefaultMetadata())
			if err != nil {
				return fmt.Errorf("failed to render metadata: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func readPayload(cmd *cobra.Command, path string) ([]byte, error) {
	if path != "" {
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return payload, nil
	}
	payload, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return payload, nil
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
