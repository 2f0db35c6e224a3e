package skillnorm

// seniorityPrefixes are stripped from the start of a skill string before
// alias resolution ("senior golang" and "golang" canonicalize identically).
var seniorityPrefixes = []string{
	"senior",
	"sr.",
	"sr",
	"lead",
	"principal",
	"staff",
	"junior",
	"jr.",
	"jr",
	"expert",
	"advanced",
}

// aliasGroups maps every known variant of a skill name to its canonical
// form. Keys are lowercase; lookups happen after prefix stripping.
var aliasGroups = map[string]string{
	// Languages
	"js":          "javascript",
	"javascript":  "javascript",
	"ecmascript":  "javascript",
	"es6":         "javascript",
	"ts":          "typescript",
	"typescript":  "typescript",
	"golang":      "go",
	"go lang":     "go",
	"go":          "go",
	"py":          "python",
	"python":      "python",
	"python3":     "python",
	"c sharp":     "c#",
	"csharp":      "c#",
	"c#":          "c#",
	"cpp":         "c++",
	"c plus plus": "c++",
	"c++":         "c++",
	"rb":          "ruby",
	"ruby":        "ruby",
	"kt":          "kotlin",
	"kotlin":      "kotlin",
	"rs":          "rust",
	"rust":        "rust",

	// Frontend
	"react.js":  "react",
	"reactjs":   "react",
	"react js":  "react",
	"react":     "react",
	"vue.js":    "vue",
	"vuejs":     "vue",
	"vue js":    "vue",
	"vue":       "vue",
	"angularjs": "angular",
	"angular2":  "angular",
	"angular":   "angular",
	"next.js":   "nextjs",
	"next js":   "nextjs",
	"nextjs":    "nextjs",

	// Backend
	"node":       "node.js",
	"nodejs":     "node.js",
	"node js":    "node.js",
	"node.js":    "node.js",
	"express.js": "express",
	"expressjs":  "express",
	"express":    "express",
	"dot net":    ".net",
	"dotnet":     ".net",
	".net":       ".net",
	"springboot": "spring boot",
	"spring":     "spring boot",

	// Data stores
	"postgres":      "postgresql",
	"postgre":       "postgresql",
	"postgresql":    "postgresql",
	"mongo":         "mongodb",
	"mongodb":       "mongodb",
	"elastic":       "elasticsearch",
	"elasticsearch": "elasticsearch",
	"ms sql":        "sql server",
	"mssql":         "sql server",

	// Cloud / devops
	"k8s":            "kubernetes",
	"kubernetes":     "kubernetes",
	"amazon web services": "aws",
	"aws":            "aws",
	"google cloud":   "gcp",
	"google cloud platform": "gcp",
	"gcp":            "gcp",
	"ci/cd":          "cicd",
	"ci cd":          "cicd",
	"cicd":           "cicd",
	"tf":             "terraform",
	"terraform":      "terraform",

	// Concepts
	"ml":               "machine learning",
	"machine learning": "machine learning",
	"ai":               "artificial intelligence",
	"oop":              "object-oriented programming",
	"tdd":              "test-driven development",
	"rest api":         "rest",
	"restful":          "rest",
	"rest":             "rest",
}
