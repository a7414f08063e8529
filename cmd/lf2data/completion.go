package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for lf2data.

To load completions:

Bash:
  $ source <(lf2data completion bash)
  # To load permanently:
  $ lf2data completion bash > /etc/bash_completion.d/lf2data

Zsh:
  $ lf2data completion zsh > "${fpath[1]}/_lf2data"
  $ compinit

Fish:
  $ lf2data completion fish | source
  # To load permanently:
  $ lf2data completion fish > ~/.config/fish/completions/lf2data.fish

PowerShell:
  PS> lf2data completion powershell | Out-String | Invoke-Expression
  # To load permanently, add to your PowerShell profile
`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
