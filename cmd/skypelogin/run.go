// cmd/skypelogin/run.go
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/OsbornePro/skypelogin/internal/config"
	"github.com/OsbornePro/skypelogin/internal/credential"
	"github.com/OsbornePro/skypelogin/internal/dialog"
	"github.com/OsbornePro/skypelogin/internal/input"
	"github.com/OsbornePro/skypelogin/internal/launcher"
	"github.com/OsbornePro/skypelogin/internal/logging"
	"github.com/OsbornePro/skypelogin/internal/login"
	"github.com/OsbornePro/skypelogin/internal/snapshot"
	"github.com/OsbornePro/skypelogin/internal/win32"
)

var errNoCredentials = errors.New("need --account and --password, or --code")

var (
	flagAccount  string
	flagPassword string
	flagCode     string
	flagExe      string
	flagConfig   string
	flagBackend  string
	flagEnvFile  string
	flagDebug    bool
	noDialog     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch Skype and sign in (the default command)",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&flagAccount, "account", "a", "", "account name (env "+config.EnvAccount+")")
	f.StringVarP(&flagPassword, "password", "p", "", "password (env "+config.EnvPassword+")")
	f.StringVarP(&flagCode, "code", "c", "", "encoded account and password (env "+config.EnvCode+")")
	f.StringVar(&flagExe, "exe", "", "path to Skype.exe; asks with a dialog when unset (env "+config.EnvExe+")")
	f.StringVar(&flagConfig, "config", "", "config file (.yaml, .yml or .json)")
	f.StringVar(&flagBackend, "backend", "", "input backend: message or robotgo")
	f.StringVar(&flagEnvFile, "env-file", ".env", "file of KEY=VALUE defaults")
	f.BoolVar(&flagDebug, "debug", false, "debug logging")
	f.BoolVar(&noDialog, "no-dialog", false, "report on stderr only, never show a dialog")
}

// firstNonEmpty returns the flag value, else the environment variable.
func firstNonEmpty(flag, env string) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(env))
}

// resolveCredentials prefers an explicit account and password over a code.
func resolveCredentials(account, password, code string, loadKey func() ([]byte, bool, error)) (credential.Pair, error) {
	if account != "" || password != "" {
		p := credential.Pair{Account: account, Password: password}
		if !p.Valid() {
			return credential.Pair{}, errNoCredentials
		}
		return p, nil
	}
	if code == "" {
		return credential.Pair{}, errNoCredentials
	}
	key, _, err := loadKey()
	if err != nil {
		return credential.Pair{}, err
	}
	return credential.Decode(code, key)
}

// loadCredentials resolves the pair and registers every credential value,
// given or decoded, with the log redactor.
func loadCredentials(log *logging.Logger, account, password, code string, loadKey func() ([]byte, bool, error)) (credential.Pair, error) {
	for _, s := range []string{account, password, code} {
		log.AddSecret(s)
	}
	pair, err := resolveCredentials(account, password, code, loadKey)
	if err != nil {
		return credential.Pair{}, err
	}
	log.AddSecret(pair.Account)
	log.AddSecret(pair.Password)
	return pair, nil
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if flagExe != "" {
		cfg.Executable = flagExe
	}
	if flagBackend != "" {
		cfg.InputBackend = flagBackend
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.New(logging.Options{
		File:     cfg.LogFile,
		Dir:      cfg.LogDir,
		RotateMB: cfg.LogRotateMB,
		Keep:     cfg.LogKeep,
		Stderr:   config.BoolDeref(cfg.LogStderr, true),
		Redact:   config.BoolDeref(cfg.LogRedact, true),
		Level:    cfg.LogLevel,
		EventLog: cfg.EventLog,
		Name:     "skypelogin",
	})
}

// pickExecutable returns the configured path or asks for one.
func pickExecutable(cfg *config.Config) (string, error) {
	exe := cfg.Executable
	if exe == "" {
		if noDialog {
			return "", errors.New("no executable: pass --exe or set " + config.EnvExe)
		}
		var err error
		exe, err = dialog.OpenExecutable(dialog.Options{
			Title:      "Select Skype.exe",
			InitialDir: cfg.InitialDir,
		})
		if err != nil {
			return "", err
		}
	}
	if err := launcher.ValidateExecutable(exe, cfg.ExecutablePattern); err != nil {
		return "", fmt.Errorf("it's not Skype.exe: %w", err)
	}
	return exe, nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	pair, err := loadCredentials(log,
		firstNonEmpty(flagAccount, config.EnvAccount),
		firstNonEmpty(flagPassword, config.EnvPassword),
		firstNonEmpty(flagCode, config.EnvCode),
		credential.LoadKey,
	)
	if err != nil {
		return err
	}

	exe, err := pickExecutable(cfg)
	if err != nil {
		return err
	}

	backend, err := input.New(cfg.InputBackend, cfg.ClickPace(), log)
	if err != nil {
		return err
	}

	r := &login.Runner{
		Desktop:  win32.Desktop{},
		Input:    backend,
		Launcher: launcher.Launcher{SecondaryFlag: cfg.SecondaryFlag},
		Config:   cfg,
		Log:      log,
		Snapshot: snapshot.Capture,
	}

	log.WithFields(logrus.Fields{
		"exe":     exe,
		"backend": cfg.InputBackend,
	}).Info("starting login")

	err = r.Run(cmd.Context(), exe, pair)
	switch {
	case errors.Is(err, login.ErrNotLoginScreen):
		log.Info("Is not login screen.")
		notify("Skype is not showing the login screen; nothing to do.")
		return nil
	case err != nil:
		return err
	}
	notify("Done.")
	return nil
}

func notify(msg string) {
	if noDialog {
		fmt.Fprintln(os.Stdout, msg)
		return
	}
	dialog.Info(msg)
}
