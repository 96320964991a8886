// Package main provides the structor binary: a conversational assistant
// that interviews a business owner and produces a structuring profile.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"structor/pkg/assist"
	"structor/pkg/chat"
	"structor/pkg/config"
	"structor/pkg/logx"
	"structor/pkg/method"
	"structor/pkg/metrics"
	"structor/pkg/persistence"
	"structor/pkg/report"
	"structor/pkg/specialist"
	"structor/pkg/store"
	"structor/pkg/wizard"
)

// Version information - set by goreleaser via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "structor",
		Short: "Guided business-structuring assistant",
		Long: `Structor interviews you about your business through a guided intake
wizard, routes you to specialist sub-flows (compliance, finance, legal,
ops, accounting, logistics), and renders analysis reports and a
consolidated structuring profile. English and Portuguese supported.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(chatCmd(&configPath))
	cmd.AddCommand(resetCmd(&configPath))
	cmd.AddCommand(sessionsCmd(&configPath))
	cmd.AddCommand(historyCmd(&configPath))
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("structor %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

func chatCmd(configPath *string) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start or resume an interactive intake conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			recorder := metrics.NewRecorder()
			if cfg.Metrics.Enabled {
				metrics.Serve(cfg.Metrics.ListenAddr)
			}

			svc, archive, err := buildService(cfg, recorder)
			if err != nil {
				return err
			}
			defer archive.Close()

			if sessionID == "" {
				sessionID = "default"
			}
			return runREPL(cmd, svc, sessionID)
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (default \"default\")")
	return cmd
}

func resetCmd(configPath *string) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete a session's live state (archived history is kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			sessions, err := store.NewStore(cfg.Storage.Dir)
			if err != nil {
				return err
			}
			if sessionID == "" {
				sessionID = "default"
			}
			if err := sessions.Delete(sessionID); err != nil {
				return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
			}
			fmt.Printf("Session %s reset.\n", sessionID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (default \"default\")")
	return cmd
}

func sessionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			sessions, err := store.NewStore(cfg.Storage.Dir)
			if err != nil {
				return err
			}
			ids, err := sessions.List()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Println("No sessions.")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func historyCmd(configPath *string) *cobra.Command {
	var (
		sessionID string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print a session's archived transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			archive, err := openArchive(cfg)
			if err != nil {
				return err
			}
			defer archive.Close()

			if sessionID == "" {
				sessionID = "default"
			}
			messages, err := archive.Transcript(sessionID, limit)
			if err != nil {
				return err
			}
			for _, m := range messages {
				fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Role, m.Content)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (default \"default\")")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Most recent messages to show (0 for all)")
	return cmd
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, nil
}

func openArchive(cfg *config.Config) (*persistence.Archive, error) {
	if dir := filepath.Dir(cfg.Storage.DatabaseFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return persistence.Open(cfg.Storage.DatabaseFile)
}

// buildService wires the full turn pipeline: document store, archive,
// orchestrator, assist provider, reports, and the navigation controller.
func buildService(cfg *config.Config, recorder *metrics.Recorder) (*chat.Service, *persistence.Archive, error) {
	sessions, err := store.NewStore(cfg.Storage.Dir)
	if err != nil {
		return nil, nil, err
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return nil, nil, err
	}

	orch := wizard.NewOrchestrator(specialist.All(), cfg.DefaultLanguage, cfg.Wizard.DefaultPack)
	orch.SetWorkflowIdentity(cfg.Wizard.WorkflowID, cfg.Wizard.Version, cfg.DynamicEnabled())

	navigator := wizard.NewNavigator(orch, wizard.NavigatorConfig{
		Assist:   assist.NewFromConfig(cfg.Assist),
		Reports:  report.Registry(),
		Method:   method.Lookup,
		Render:   report.Profile,
		Recorder: recorder,
	})

	return chat.NewService(sessions, archive, navigator), archive, nil
}

// runREPL reads lines from stdin and feeds them through the turn service
// until EOF, "exit", or an interrupt.
func runREPL(cmd *cobra.Command, svc *chat.Service, sessionID string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logx.NewLogger("cli")
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		fmt.Printf("structor %s — session %s\n", version, sessionID)
		fmt.Println("Type /intake to begin, /help for commands, quit to leave.")
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// EXIT is a wizard keyword at the reset prompt, so only "quit"
		// terminates the process.
		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "/quit") {
			break
		}

		reply, err := svc.Turn(ctx, sessionID, input)
		if err != nil {
			logger.Error("Turn failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(reply)
		fmt.Println()

		if ctx.Err() != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if interactive {
		fmt.Println("Goodbye.")
	}
	return nil
}
