// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import "fmt"

// bashScriptTemplate is the shell-integration boilerplate. The hook
// re-invokes the program with the completion sentinel, passing whether
// the cursor trails a space followed by the typed words (minus the
// program name itself). Hints come back one per line and carry their own
// trailing-space markers, hence "complete -o nospace" and the newline
// IFS.
const bashScriptTemplate = `# bash completion for %[1]s
# Install with: %[1]s --generate-autocomplete-file >> ~/.bashrc
_%[1]s_autocomplete() {
    local trailing=0
    if [ "${COMP_LINE: -1}" = " " ]; then
        trailing=1
    fi
    local IFS=$'\n'
    COMPREPLY=( $(%[1]s --autocomplete-help "$trailing" "${COMP_WORDS[@]:1:COMP_CWORD}") )
}
complete -o nospace -F _%[1]s_autocomplete %[1]s
`

// BashScript returns the bash integration script for a program. The
// caller prints it to stdout for the user to source or append to their
// shell profile.
func BashScript(program string) string {
	return fmt.Sprintf(bashScriptTemplate, program)
}
