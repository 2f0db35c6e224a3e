package density

// Term categories. Category names are stable identifiers used in
// TechnicalDensityResult.CategoryScores.
const (
	CategoryLanguages        = "languages"
	CategoryFrameworks       = "frameworks"
	CategoryDatabases        = "databases"
	CategoryCloudDevops      = "cloud_devops"
	CategoryConcepts         = "concepts"
	CategoryRoleIndicators   = "role_indicators"
	CategoryVersionSpecific  = "version_specific"
	CategoryIndustrySpecific = "industry_specific"
)

// categoryOrder fixes iteration order for deterministic results.
var categoryOrder = []string{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryCloudDevops,
	CategoryConcepts,
	CategoryRoleIndicators,
	CategoryVersionSpecific,
	CategoryIndustrySpecific,
}

// termCategories is the static technology vocabulary. Terms are lowercase;
// multi-word terms match when all their words appear as tokens, in any order.
var termCategories = map[string][]string{
	CategoryLanguages: {
		"javascript", "typescript", "python", "java", "go", "golang", "rust",
		"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "elixir",
		"haskell", "perl", "sql", "html", "css", "bash",
	},
	CategoryFrameworks: {
		"react", "angular", "vue", "svelte", "next.js", "node.js", "express",
		"django", "flask", "fastapi", "rails", "spring boot", "laravel",
		".net", "flutter", "react native", "tailwind",
	},
	CategoryDatabases: {
		"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "sqlite", "oracle", "sql server", "mariadb",
		"neo4j", "snowflake", "bigquery",
	},
	CategoryCloudDevops: {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
		"jenkins", "github actions", "gitlab ci", "circleci", "helm",
		"prometheus", "grafana", "nginx", "linux", "serverless", "lambda",
		"cloudformation", "pulumi",
	},
	CategoryConcepts: {
		"microservices", "rest api", "graphql", "grpc", "ci/cd", "tdd",
		"agile", "scrum", "machine learning", "deep learning", "data pipeline",
		"distributed systems", "event driven", "message queue", "caching",
		"load balancing", "oauth", "websockets", "observability",
		"unit testing", "design patterns", "object oriented",
	},
	CategoryRoleIndicators: {
		"software engineer", "backend developer", "frontend developer",
		"full stack developer", "devops engineer", "data engineer",
		"site reliability engineer", "machine learning engineer",
		"mobile developer", "platform engineer", "security engineer",
		"cloud architect", "qa engineer",
	},
	CategoryVersionSpecific: {
		"python 3", "java 17", "java 21", "es6", "http/2", "angular 2",
		"vue 3", "react 18", "php 8", ".net core", "node 20",
	},
	CategoryIndustrySpecific: {
		"fintech", "hipaa", "pci dss", "hl7", "fhir", "payment processing",
		"trading systems", "blockchain", "iot", "embedded systems",
		"telematics", "ad tech", "e-commerce platform",
	},
}

// technicalRoleKeywords match a job title exactly enough to assert a
// technical role with full confidence.
var technicalRoleKeywords = []string{
	"software engineer", "software developer", "backend engineer",
	"backend developer", "frontend engineer", "frontend developer",
	"full stack engineer", "full stack developer", "devops engineer",
	"data engineer", "data scientist", "machine learning engineer",
	"site reliability engineer", "systems engineer", "platform engineer",
	"mobile developer", "ios developer", "android developer",
	"security engineer", "cloud engineer", "qa engineer",
	"infrastructure engineer", "solutions architect", "cloud architect",
}

// genericTechnicalIndicators are single words that weakly signal a
// technical role when the title is not an exact role keyword.
var genericTechnicalIndicators = []string{
	"engineer", "developer", "programmer", "architect", "devops", "sre",
	"technical", "technology", "infrastructure", "sysadmin", "coder",
}

// vocabularySize is the total number of known terms across all categories.
func vocabularySize() int {
	total := 0
	for _, terms := range termCategories {
		total += len(terms)
	}
	return total
}
