// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/meta"
)

const bashCompletionScript = `# bash completion for combctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_combctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run resolve show diff presets completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local options="--custom-config --engine --no-search --notify --on-save --predef -p --process-stylus --project-root"
    local report="--color -c --filter -f --output -o --padding --titles -t"

    case "$cmd" in
        run)
            local opts="$options --grammar -g --lines -l --quiet -q --save-trigger --stdout"
            ;;
        resolve)
            local opts="$options $report"
            ;;
        show)
            local opts="$options $report --preset --query"
            ;;
        diff)
            local opts="$options --against -a --color -c --ignore"
            ;;
        presets)
            local opts="$report"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$options"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --predef|-p|--preset|--against|-a)
            COMPREPLY=( $(compgen -W "csscomb yandex zen" -- "$cur") )
            return 0
            ;;
        --grammar|-g)
            COMPREPLY=( $(compgen -W "css less scss sass stylus" -- "$cur") )
            return 0
            ;;
        --project-root)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete file names
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _combctl combctl
`

const zshCompletionScript = `#compdef combctl

_combctl() {
  local -a cmds
  cmds=(
    'run:comb css files in place'
    'resolve:show which config applies to files'
    'show:print the effective csscomb config'
    'diff:diff the effective config against a preset'
    'presets:list the built-in presets'
    'completion:generate shell completion script'
  )

  local -a options
  options=(
  '--custom-config[config file used when none is found]:file:_files'
  '--engine[formatter executable]:engine:_command_names'
  '--no-search[do not search ancestor directories]'
  '--notify[show notifications]'
  '--on-save[comb files when the save trigger fires]'
  '(-p --predef)'{-p,--predef}'[preset]:preset:(csscomb yandex zen)'
  '--process-stylus[process stylus as sass]'
  '--project-root[project root]:dir:_directories'
  )

  local -a report
  report=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[row filters]:filter'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '--padding[column padding]:padding'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'combctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    run)
      _arguments -C \
        $options \
        '(-g --grammar)'{-g,--grammar}'[grammar]:grammar:(css less scss sass stylus)' \
        '(-l --lines)'{-l,--lines}'[line range FROM:TO]:lines' \
        '(-q --quiet)'{-q,--quiet}'[log notifications]' \
        '--save-trigger[act as the will-save hook]' \
        '--stdout[write result to stdout]' \
        '*:file:_files'
      ;;
    resolve)
      _arguments -C $options $report '*:file:_files'
      ;;
    show)
      _arguments -C \
        $options $report \
        '--preset[show a preset]:preset:(csscomb yandex zen)' \
        '--query[gjson path]:query' \
        '::target:_files'
      ;;
    diff)
      _arguments -C \
        $options \
        '(-a --against)'{-a,--against}'[preset]:preset:(csscomb yandex zen)' \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '*--ignore[key to ignore]:key' \
        '::target:_files'
      ;;
    presets)
      _arguments -C $report
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _combctl combctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: combctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "combctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
