package textproc

import "strings"

// skillAliases maps common skill name variants to canonical names.
var skillAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"c++":        "cpp",
	"c#":         "csharp",
	"node":       "node.js",
	"nodejs":     "node.js",
	"reactjs":    "react",
	"vuejs":      "vue",
	"angularjs":  "angular",
	"postgresql": "postgres",
	"mysql":      "mysql",
	"mongodb":    "mongo",
	"aws":        "amazon web services",
	"gcp":        "google cloud platform",
	"k8s":        "kubernetes",
}

// NormalizeSkillName lower-cases and trims a skill name, then applies the
// alias table. Unmapped input passes through unchanged (lower-cased).
func NormalizeSkillName(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[skill]; ok {
		return canonical
	}
	return skill
}
