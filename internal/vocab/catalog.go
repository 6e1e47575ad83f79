// Package vocab holds the immutable skill and education vocabularies used
// for presence-matching in free text. The tables are built once at process
// start and shared read-only between the parser and the matcher.
package vocab

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// catalogSkills is the canonical technical skill vocabulary. Grouped for
// readability only; matching ignores the grouping.
var catalogSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "sql", "html",
	"css", "sass", "less",

	// Frameworks and libraries
	"react", "angular", "vue", "node.js", "express", "django", "flask",
	"spring", "laravel", "rails", "asp.net", ".net", "jquery", "bootstrap",
	"tailwind", "material-ui", "redux", "next.js", "nuxt.js", "gatsby",
	"svelte", "ember", "backbone",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
	"sqlite", "cassandra", "dynamodb", "firebase", "mariadb", "couchdb",
	"neo4j",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
	"gitlab", "ci/cd", "terraform", "ansible", "nginx", "apache", "heroku",
	"vercel", "netlify",

	// Tools
	"linux", "unix", "windows", "macos", "bash", "powershell", "vim",
	"vscode", "intellij", "eclipse", "postman", "jira", "confluence", "slack",
	"trello",

	// Data science and ML
	"machine learning", "deep learning", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "jupyter",
	"tableau", "power bi", "spark", "hadoop", "kafka", "airflow",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "cordova",
	"ionic",

	// Testing
	"jest", "mocha", "chai", "selenium", "cypress", "junit", "pytest",
	"unit testing", "integration testing", "tdd", "bdd", "cucumber",
}

// educationKeywords are degree and field names scanned for by the parser.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "diploma", "certificate",
	"b.tech", "b.e", "m.tech", "m.e", "mba", "bca", "mca",
	"computer science", "information technology", "software engineering",
	"electrical engineering", "mechanical engineering", "civil engineering",
}

// relevantFields are the education fields the education score treats as
// directly relevant to software roles.
var relevantFields = []string{
	"computer science", "software engineering", "information technology",
}

// Catalog is an immutable skill vocabulary. The zero value is not usable;
// obtain one from Default.
type Catalog struct {
	skills    []string
	education []string
}

var defaultCatalog = &Catalog{skills: catalogSkills, education: educationKeywords}

// Default returns the shared canonical catalog.
func Default() *Catalog {
	return defaultCatalog
}

// FindSkills scans text case-insensitively for boundary-delimited catalog
// entries and returns the matches in catalog order, lower-cased.
func (c *Catalog) FindSkills(text string) []string {
	return findTerms(c.skills, text)
}

// FindEducation scans text for degree and field keywords, in table order.
func (c *Catalog) FindEducation(text string) []string {
	return findTerms(c.education, text)
}

// Size returns the number of skill entries, for processing diagnostics.
func (c *Catalog) Size() int {
	return len(c.skills)
}

// RelevantEducationFields returns the CS-adjacent field names used by the
// education component of the score.
func RelevantEducationFields() []string {
	return relevantFields
}

func findTerms(terms []string, text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, term := range terms {
		if textproc.ContainsTerm(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
