package parser

import (
	"regexp"
	"strings"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// cvarPattern matches a cvar declaration up to the end of its value.
var cvarPattern = regexp.MustCompile(`Lua cvar: \([a-zA-Z_+\-,.0-9/]*`)

// ParseConfiguration collects every cvar declared in the document.
// A document without declarations yields an empty Configuration.
func ParseConfiguration(doc string) (frag.Configuration, error) {
	settings := make(frag.Configuration)
	for _, decl := range cvarPattern.FindAllString(doc, -1) {
		_, body, _ := strings.Cut(decl, "(")
		parts := strings.Split(body, ",")
		if len(parts) != 2 {
			return nil, parseErrorf(decl, "cvar declaration must be (key,value)")
		}
		settings[parts[0]] = parts[1]
	}
	return settings, nil
}
