package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Describe renders entry as Markdown: summary, axes with their classes,
// defaults, and compound rules.
func Describe(entry Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", entry.Name)
	level := entry.Level
	if level == "" {
		level = LevelAtom
	}
	fmt.Fprintf(&b, "_%s_", level)
	if entry.Custom {
		b.WriteString(" · custom")
	}
	b.WriteString("\n\n")
	if entry.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", entry.Summary)
	}

	spec := entry.Spec
	if spec == nil {
		return b.String()
	}

	if base := spec.Base(); len(base) > 0 {
		fmt.Fprintf(&b, "## Base\n\n`%s`\n\n", strings.Join(base, " "))
	}

	defaults := spec.Defaults()
	for _, axis := range spec.Axes() {
		fmt.Fprintf(&b, "## Axis `%s`\n\n", axis.Name)
		b.WriteString("| Value | Classes |\n|---|---|\n")
		for _, value := range axis.Values {
			name := value.Name
			if defaults[axis.Name] == value.Name {
				name += " (default)"
			}
			fmt.Fprintf(&b, "| %s | %s |\n", name, codeOrDash(value.Classes))
		}
		b.WriteString("\n")
	}

	if rules := spec.Compound(); len(rules) > 0 {
		b.WriteString("## Compound rules\n\n")
		for _, rule := range rules {
			keys := make([]string, 0, len(rule.Match))
			for k := range rule.Match {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			conds := make([]string, len(keys))
			for i, k := range keys {
				conds[i] = fmt.Sprintf("%s=%s", k, rule.Match[k])
			}
			fmt.Fprintf(&b, "- when %s → %s\n", strings.Join(conds, ", "), codeOrDash(rule.Classes))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func codeOrDash(tokens []string) string {
	if len(tokens) == 0 {
		return "—"
	}
	return "`" + strings.Join(tokens, " ") + "`"
}
