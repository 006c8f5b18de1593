package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/solarpipe/commission/internal/calculation"
	"github.com/solarpipe/commission/internal/config"
	"github.com/solarpipe/commission/internal/domain"
)

const envPrefix = "COMMISSION"

// app carries settings shared by every subcommand.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "commission",
		Short:         "Solar commission and earnings calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("policy", "", "commission policy YAML (defaults to built-in rates)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("policy", root.PersistentFlags().Lookup("policy"))
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newBreakdownCmd(a),
		newReportCmd(a),
		newTierCmd(a),
		newExamplePolicyCmd(),
	)
	return root
}

// newLogger builds a console zap logger writing to stderr at the configured level.
func (a *app) newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func (a *app) loadPolicy() (domain.Policy, error) {
	path := a.v.GetString("policy")
	if path == "" {
		return domain.DefaultPolicy(), nil
	}
	policy, err := config.NewInputParser().LoadPolicyFromFile(path)
	if err != nil {
		return domain.Policy{}, err
	}
	return *policy, nil
}

// newEngine builds an engine from the configured policy and log level. The
// returned func flushes the logger.
func (a *app) newEngine() (*calculation.Engine, func(), error) {
	policy, err := a.loadPolicy()
	if err != nil {
		return nil, nil, err
	}
	logger, err := a.newLogger()
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewEngineWithPolicy(policy)
	engine.SetLogger(calculation.NewZapLogger(logger))
	return engine, func() { _ = logger.Sync() }, nil
}
