package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grokify/releaseconductor/internal/builder"
	"github.com/grokify/releaseconductor/internal/config"
	"github.com/grokify/releaseconductor/internal/git"
	"github.com/grokify/releaseconductor/internal/hosting"
	"github.com/grokify/releaseconductor/internal/manifest"
	"github.com/grokify/releaseconductor/internal/report"
	"github.com/grokify/releaseconductor/internal/shell"
	"github.com/grokify/releaseconductor/internal/workflow"
)

var cfgFile string

// rootCmd is the single command; releasing is the whole program.
var rootCmd = &cobra.Command{
	Use:   "releaseconductor",
	Short: "Cut a package release: tag, push, build, publish",
	Long: `ReleaseConductor automates cutting a release for a single package:
it resolves a version, tags the repository, pushes the tag, builds
distributable artifacts, and creates or updates a hosted release with
the artifacts attached.

Configuration is read from a flat release.yaml file; every step is
idempotent so a failed run can be retried after fixing the cause.

Part of the DevOpsOrchestra suite alongside VersionConductor.

Examples:
  # Preview the release without touching anything
  releaseconductor --dry-run

  # Cut the release described by release.yaml
  releaseconductor

  # Release an explicit version as a prerelease draft
  releaseconductor --version 2.0.0-rc.1 --prerelease --draft`,
	RunE: runRelease,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&cfgFile, "config", config.DefaultPath, "release config file")
	rootCmd.Flags().Bool("dry-run", false, "Log every step without executing anything external")
	rootCmd.Flags().Bool("verbose", false, "Enable verbose output")
	rootCmd.Flags().String("format", "table", "Summary format: table, json, yaml, markdown")
	rootCmd.Flags().String("host", "cli", "Release host backend: cli (gh) or api (GitHub REST)")
	rootCmd.Flags().String("token", "", "GitHub token for the api host (or set GITHUB_TOKEN)")
	rootCmd.Flags().String("manifest", manifest.DefaultPath, "Package manifest for version auto-detection")
	rootCmd.Flags().String("dist-dir", builder.DefaultOutDir, "Artifact output directory")

	// Config-file overrides.
	rootCmd.Flags().String("repo", "", "Repository (owner/name), overrides config")
	rootCmd.Flags().String("version", "", "Release version or \"auto\", overrides config")
	rootCmd.Flags().String("branch", "", "Target branch, overrides config")
	rootCmd.Flags().String("tag-prefix", "", "Tag prefix, overrides config")
	rootCmd.Flags().String("notes-file", "", "Release notes file, overrides config")
	rootCmd.Flags().Bool("draft", false, "Create the release as a draft")
	rootCmd.Flags().Bool("prerelease", false, "Mark the release as a prerelease")

	_ = viper.BindPFlag("dry-run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("host", rootCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("token", rootCmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("manifest", rootCmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("dist-dir", rootCmd.Flags().Lookup("dist-dir"))
}

// initConfig reads environment variables. The release.yaml file itself is
// read by internal/config, not by viper.
func initConfig() {
	viper.SetEnvPrefix("RELEASECONDUCTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Also check GITHUB_TOKEN directly
	if viper.GetString("token") == "" {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			viper.Set("token", token)
		}
	}
}

func runRelease(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	verbose := viper.GetBool("verbose")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return err
	}

	rel, err := workflow.Resolve(cfg, viper.GetString("manifest"))
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "resolved %s %s -> tag %s\n", cfg.PackageName, rel.Version, rel.Tag)
	}

	runner := &shell.Runner{Verbose: verbose}

	var host hosting.Host
	switch viper.GetString("host") {
	case "api":
		host = hosting.NewGitHubAPI(viper.GetString("token"))
	case "cli":
		host = hosting.NewGHCLI(runner)
	default:
		return fmt.Errorf("unknown host backend %q, expected cli or api", viper.GetString("host"))
	}

	w := &workflow.Workflow{
		Config:  cfg,
		Release: rel,
		Git:     git.NewCLI(runner),
		Host:    host,
		Builder: builder.NewPython(runner),
		DistDir: viper.GetString("dist-dir"),
		DryRun:  viper.GetBool("dry-run"),
		Verbose: verbose,
	}

	result, runErr := w.Run(ctx)
	if runErr != nil {
		return runErr
	}

	output, err := report.New(viper.GetString("format")).FormatRunResult(result)
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	fmt.Print(output)

	return nil
}

// applyOverrides copies changed flag values over the file config.
func applyOverrides(cmd *cobra.Command, cfg *config.ReleaseConfig) {
	flags := cmd.Flags()

	if flags.Changed("repo") {
		cfg.Repo, _ = flags.GetString("repo")
	}
	if flags.Changed("version") {
		cfg.Version, _ = flags.GetString("version")
	}
	if flags.Changed("branch") {
		cfg.TargetBranch, _ = flags.GetString("branch")
	}
	if flags.Changed("tag-prefix") {
		cfg.TagPrefix, _ = flags.GetString("tag-prefix")
	}
	if flags.Changed("notes-file") {
		cfg.ReleaseNotesFile, _ = flags.GetString("notes-file")
	}
	if flags.Changed("draft") {
		cfg.Draft, _ = flags.GetBool("draft")
	}
	if flags.Changed("prerelease") {
		cfg.Prerelease, _ = flags.GetBool("prerelease")
	}
}
