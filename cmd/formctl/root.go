package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formctl/internal/config"
	"github.com/goliatone/go-formctl/internal/logger"
)

// errReported marks failures already shown to the user.
var errReported = errors.New("formctl: failure reported")

type app struct {
	envFiles []string
	flags    map[string]*string
	logJSON  bool
	guard    bool

	cfg *config.Config
	log logger.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		flags: map[string]*string{
			"endpoint":        new(string),
			"form_id":         new(string),
			"log_level":       new(string),
			"banner_duration": new(string),
			"content_type":    new(string),
		},
	}

	root := &cobra.Command{
		Use:           "formctl",
		Short:         "Validate, fill and submit referral-style forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default ./.env)")
	pf.StringVar(a.flags["endpoint"], "endpoint", "", "submission endpoint (FORMCTL_ENDPOINT)")
	pf.StringVar(a.flags["form_id"], "form-id", "", "id of the form element (FORMCTL_FORM_ID)")
	pf.StringVar(a.flags["log_level"], "log-level", "", "debug, info, warn or error (FORMCTL_LOG_LEVEL)")
	pf.StringVar(a.flags["banner_duration"], "banner-duration", "", "how long banners stay visible (FORMCTL_BANNER_DURATION)")
	pf.StringVar(a.flags["content_type"], "content-type", "", "request content type (FORMCTL_CONTENT_TYPE)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit JSON logs (FORMCTL_LOG_JSON)")
	pf.BoolVar(&a.guard, "submit-guard", false, "reject a submit while another is in flight (FORMCTL_SUBMIT_GUARD)")

	root.AddCommand(
		newFieldsCommand(a),
		newCheckCommand(a),
		newFillCommand(a),
		newAnnotateCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return err
	}

	overrides := make(map[string]any, len(a.flags)+2)
	for key, value := range a.flags {
		overrides[key] = *value
	}
	if cmd.Flags().Changed("log-json") {
		overrides["log_json"] = a.logJSON
	}
	if cmd.Flags().Changed("submit-guard") {
		overrides["submit_guard"] = a.guard
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := cfg.Logger()
	logCfg.Output = cmd.ErrOrStderr()
	a.log = logger.New(logCfg)
	a.log.Debug("configuration loaded", "form_id", cfg.FormID, "endpoint", cfg.Endpoint)
	return nil
}
