// Package flagx helps several independent flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the arguments that belong to allowedFlags, together
// with their values. Both "-f value" and "-f=value" forms are recognised, and
// a flag may be written with one or two leading dashes regardless of how it is
// listed in allowedFlags. A value is only consumed when the next argument does
// not itself look like a flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, keep := allowed[flagName(name)]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[flagName(arg)]; !keep {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func flagName(s string) string {
	return strings.TrimLeft(s, "-")
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns "" when neither is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
