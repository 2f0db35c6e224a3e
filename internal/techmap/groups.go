package techmap

// DefaultRegistry returns the built-in technology relationship map.
// Invariant: within a subcategory, each primary appears in exactly one
// group, and no related entry overlaps another group's primary.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]map[string][]Group{
		"frontend": {
			"frameworks": {
				{
					Primary:      "react",
					Related:      []string{"next.js", "gatsby", "redux", "react native"},
					Compensation: 0.8,
					Context:      []string{"component", "hooks", "jsx", "spa"},
				},
				{
					Primary:      "vue",
					Related:      []string{"nuxt", "vuex", "pinia"},
					Compensation: 0.8,
					Context:      []string{"component", "spa", "reactive"},
				},
				{
					Primary:      "angular",
					Related:      []string{"rxjs", "ngrx", "ionic"},
					Compensation: 0.75,
					Context:      []string{"component", "spa", "dependency injection"},
				},
			},
			"languages": {
				{
					Primary:      "javascript",
					Related:      []string{"typescript", "coffeescript"},
					Compensation: 0.9,
					Context:      []string{"frontend", "browser", "web"},
				},
			},
			"tools": {
				{
					Primary:      "webpack",
					Related:      []string{"vite", "rollup", "esbuild", "parcel"},
					Compensation: 0.7,
					Context:      []string{"bundle", "build"},
				},
			},
		},
		"backend": {
			"frameworks": {
				{
					Primary:      "node.js",
					Related:      []string{"express", "nestjs", "fastify", "koa"},
					Compensation: 0.85,
					Context:      []string{"api", "server", "backend", "microservice"},
				},
				{
					Primary:      "django",
					Related:      []string{"flask", "fastapi"},
					Compensation: 0.8,
					Context:      []string{"api", "server", "backend"},
				},
				{
					Primary:      "spring boot",
					Related:      []string{"hibernate", "maven", "gradle"},
					Compensation: 0.75,
					Context:      []string{"api", "server", "enterprise"},
				},
			},
			"languages": {
				{
					Primary:      "go",
					Related:      []string{"rust", "c"},
					Compensation: 0.6,
					Context:      []string{"backend", "systems", "concurrent"},
				},
				{
					Primary:      "python",
					Related:      []string{"ruby"},
					Compensation: 0.6,
					Context:      []string{"backend", "scripting", "data"},
				},
				{
					Primary:      "java",
					Related:      []string{"kotlin", "scala"},
					Compensation: 0.75,
					Context:      []string{"backend", "jvm", "enterprise"},
				},
			},
			"databases": {
				{
					Primary:      "postgresql",
					Related:      []string{"mysql", "mariadb", "sqlite", "sql server"},
					Compensation: 0.85,
					Context:      []string{"sql", "relational", "database"},
				},
				{
					Primary:      "mongodb",
					Related:      []string{"dynamodb", "couchdb", "cassandra"},
					Compensation: 0.7,
					Context:      []string{"nosql", "document", "database"},
				},
				{
					Primary:      "redis",
					Related:      []string{"memcached"},
					Compensation: 0.8,
					Context:      []string{"cache", "in-memory"},
				},
			},
		},
		"devops": {
			"tools": {
				{
					Primary:      "docker",
					Related:      []string{"podman", "containerd", "docker compose"},
					Compensation: 0.85,
					Context:      []string{"container", "image", "deploy"},
				},
				{
					Primary:      "kubernetes",
					Related:      []string{"helm", "openshift", "rancher", "istio"},
					Compensation: 0.75,
					Context:      []string{"orchestration", "cluster", "deploy"},
				},
				{
					Primary:      "terraform",
					Related:      []string{"pulumi", "cloudformation", "ansible"},
					Compensation: 0.7,
					Context:      []string{"infrastructure", "provisioning", "iac"},
				},
				{
					Primary:      "jenkins",
					Related:      []string{"github actions", "gitlab ci", "circleci", "cicd"},
					Compensation: 0.75,
					Context:      []string{"pipeline", "build", "deploy"},
				},
			},
			"core": {
				{
					Primary:      "aws",
					Related:      []string{"gcp", "azure"},
					Compensation: 0.7,
					Context:      []string{"cloud", "infrastructure", "serverless"},
				},
				{
					Primary:      "linux",
					Related:      []string{"bash", "shell scripting"},
					Compensation: 0.8,
					Context:      []string{"server", "unix", "command line"},
				},
			},
		},
		"mobile": {
			"frameworks": {
				{
					Primary:      "react native",
					Related:      []string{"expo", "flutter"},
					Compensation: 0.7,
					Context:      []string{"mobile", "ios", "android", "cross-platform"},
				},
				{
					Primary:      "swift",
					Related:      []string{"swiftui", "objective-c"},
					Compensation: 0.8,
					Context:      []string{"ios", "apple", "mobile"},
				},
				{
					Primary:      "kotlin",
					Related:      []string{"jetpack compose", "android sdk"},
					Compensation: 0.8,
					Context:      []string{"android", "mobile"},
				},
			},
		},
	})
}
