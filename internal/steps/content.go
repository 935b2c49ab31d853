package steps

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ConfigNS is the device configuration namespace the suite edits under.
const ConfigNS = "urn:arca:router:config:1.0"

// hostNameFragment builds a merge fragment setting the system host-name.
func hostNameFragment(name string) string {
	return fmt.Sprintf("<system xmlns=%q><host-name>%s</host-name></system>", ConfigNS, name)
}

// containsHostName reports whether the returned config content carries a
// host-name leaf with the given value. Content that does not parse, or
// parses without the leaf, falls back to a plain substring check.
func containsHostName(content, name string) bool {
	for _, n := range hostNames(content) {
		if n == name {
			return true
		}
	}
	return strings.Contains(content, name)
}

// hostNameValue returns the first host-name leaf in the content, or "".
func hostNameValue(content string) string {
	if names := hostNames(content); len(names) > 0 {
		return names[0]
	}
	return ""
}

func hostNames(content string) []string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return nil
	}

	var names []string
	for _, e := range doc.FindElements("//host-name") {
		names = append(names, strings.TrimSpace(e.Text()))
	}
	return names
}
