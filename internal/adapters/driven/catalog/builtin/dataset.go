package builtin

import "github.com/custodia-labs/capseek/internal/core/domain"

var categories = []domain.Category{
	{ID: "database", Name: "Database", Icon: "🗄️"},
	{ID: "filesystem", Name: "Filesystem", Icon: "📁"},
	{ID: "document", Name: "Documents", Icon: "📄"},
	{ID: "version-control", Name: "Version control", Icon: "🌿"},
	{ID: "web", Name: "Web/API", Icon: "🌐"},
	{ID: "ai", Name: "AI/ML", Icon: "🤖"},
	{ID: "search", Name: "Search", Icon: "🔍"},
	{ID: "communication", Name: "Communication", Icon: "💬"},
	{ID: "productivity", Name: "Productivity", Icon: "⚡"},
	{ID: "development", Name: "Development", Icon: "🛠️"},
	{ID: "design", Name: "Design", Icon: "🎨"},
	{ID: "testing", Name: "Testing", Icon: "🧪"},
}

const (
	reference = "modelcontextprotocol/servers"
	community = "community"
)

var mcpServers = []domain.CatalogEntry{
	{
		Name:        "PostgreSQL",
		FullName:    "@anthropic-ai/mcp-server-postgres",
		Description: "PostgreSQL database connections and queries",
		Category:    "database",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 12500, Rating: 4.8},
		Features:    []string{"Connection pooling", "SQL queries", "Transactions", "Data migration"},
		Keywords:    []string{"postgres", "postgresql", "sql", "database", "db"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-server-postgres",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/postgres",
		Language:    "typescript",
		LastUpdated: date("2026-01-30"),
	},
	{
		Name:        "MySQL",
		FullName:    "mysql-mcp-server",
		Description: "MySQL database connections and operations",
		Category:    "database",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 8300, Rating: 4.6},
		Features:    []string{"Connection management", "Query execution", "Stored procedures", "Backup and restore"},
		Keywords:    []string{"mysql", "sql", "database", "db", "maria"},
		InstallRef:  RefNPM + "mysql-mcp-server",
		URL:         "https://github.com/community/mysql-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-25"),
	},
	{
		Name:        "MongoDB",
		FullName:    "mongodb-mcp-server",
		Description: "MongoDB NoSQL database operations",
		Category:    "database",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 6700, Rating: 4.5},
		Features:    []string{"Document operations", "Aggregation queries", "Index management", "NoSQL"},
		Keywords:    []string{"mongodb", "mongo", "nosql", "database", "document"},
		InstallRef:  RefNPM + "mongodb-mcp-server",
		URL:         "https://github.com/community/mongodb-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-20"),
	},
	{
		Name:        "SQLite",
		FullName:    "@anthropic-ai/mcp-server-sqlite",
		Description: "Lightweight SQLite database",
		Category:    "database",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 9200, Rating: 4.7},
		Features:    []string{"Local database", "Zero configuration", "SQL support", "Embedded"},
		Keywords:    []string{"sqlite", "sql", "database", "local", "embedded"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-server-sqlite",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/sqlite",
		Language:    "typescript",
		LastUpdated: date("2026-01-28"),
	},
	{
		Name:        "Filesystem",
		FullName:    "@anthropic-ai/mcp-server-filesystem",
		Description: "Filesystem operations and access",
		Category:    "filesystem",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 25300, Rating: 4.9},
		Features:    []string{"Read and write files", "Directory traversal", "Permission management", "File search"},
		Keywords:    []string{"filesystem", "file", "directory", "fs", "storage"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-server-filesystem",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/filesystem",
		Language:    "typescript",
		LastUpdated: date("2026-02-01"),
	},
	{
		Name:        "PDF",
		FullName:    "@anthropic-ai/mcp-pdf",
		Description: "Read and process PDF files",
		Category:    "document",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 18700, Rating: 4.8},
		Features:    []string{"PDF reading", "Text extraction", "Metadata", "Multi-page handling"},
		Keywords:    []string{"pdf", "document", "file", "read", "extract"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-pdf",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/pdf",
		Language:    "typescript",
		LastUpdated: date("2026-01-29"),
	},
	{
		Name:        "Git",
		FullName:    "@anthropic-ai/mcp-server-git",
		Description: "Git version control operations",
		Category:    "version-control",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 15600, Rating: 4.7},
		Features:    []string{"Commit management", "Branch operations", "Diffs", "History"},
		Keywords:    []string{"git", "version-control", "vcs", "commit", "branch"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-server-git",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/git",
		Language:    "typescript",
		LastUpdated: date("2026-01-27"),
	},
	{
		Name:        "GitHub",
		FullName:    "github-mcp-server",
		Description: "GitHub API integration",
		Category:    "version-control",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 11200, Rating: 4.6},
		Features:    []string{"Issue management", "Pull requests", "Repository management", "Webhooks"},
		Keywords:    []string{"github", "git", "api", "repository", "pr"},
		InstallRef:  RefNPM + "github-mcp-server",
		URL:         "https://github.com/community/github-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-22"),
	},
	{
		Name:        "Fetch",
		FullName:    "@anthropic-ai/mcp-server-fetch",
		Description: "HTTP requests and API calls",
		Category:    "web",
		Source:      domain.SourceOfficial,
		Publisher:   reference,
		Metrics:     domain.Metrics{Downloads: 22100, Rating: 4.8},
		Features:    []string{"HTTP requests", "REST API", "JSON handling", "Authentication"},
		Keywords:    []string{"fetch", "http", "api", "request", "web", "rest"},
		InstallRef:  RefNPM + "@anthropic-ai/mcp-server-fetch",
		URL:         "https://github.com/modelcontextprotocol/servers/tree/main/src/fetch",
		Language:    "typescript",
		LastUpdated: date("2026-01-31"),
	},
	{
		Name:        "Puppeteer",
		FullName:    "puppeteer-mcp-server",
		Description: "Browser automation and web scraping",
		Category:    "web",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 8900, Rating: 4.5},
		Features:    []string{"Browser control", "Web scraping", "Screenshots", "Automated testing"},
		Keywords:    []string{"puppeteer", "browser", "scraping", "automation", "web"},
		InstallRef:  RefNPM + "puppeteer-mcp-server",
		URL:         "https://github.com/community/puppeteer-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-18"),
	},
	{
		Name:        "OpenAI",
		FullName:    "openai-mcp-server",
		Description: "OpenAI API integration",
		Category:    "ai",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 14500, Rating: 4.7},
		Features:    []string{"GPT calls", "Embeddings", "Image generation", "Text completion"},
		Keywords:    []string{"openai", "gpt", "ai", "llm", "embedding"},
		InstallRef:  RefNPM + "openai-mcp-server",
		URL:         "https://github.com/community/openai-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-26"),
	},
	{
		Name:        "Hugging Face",
		FullName:    "huggingface-mcp-server",
		Description: "Hugging Face model integration",
		Category:    "ai",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 6200, Rating: 4.4},
		Features:    []string{"Model inference", "Text generation", "Image processing", "Pipelines"},
		Keywords:    []string{"huggingface", "transformers", "ai", "ml", "model"},
		InstallRef:  RefNPM + "huggingface-mcp-server",
		URL:         "https://github.com/community/huggingface-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-15"),
	},
	{
		Name:        "Brave Search",
		FullName:    "brave-search-mcp",
		Description: "Brave search engine integration",
		Category:    "search",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 7800, Rating: 4.6},
		Features:    []string{"Web search", "Image search", "News search", "Privacy"},
		Keywords:    []string{"brave", "search", "web", "google", "bing"},
		InstallRef:  RefNPM + "brave-search-mcp",
		URL:         "https://github.com/community/brave-search-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-24"),
	},
	{
		Name:        "Slack",
		FullName:    "slack-mcp-server",
		Description: "Slack messages and channel management",
		Category:    "communication",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 5400, Rating: 4.5},
		Features:    []string{"Send messages", "Channel management", "User lookup", "Webhooks"},
		Keywords:    []string{"slack", "chat", "message", "communication", "team"},
		InstallRef:  RefNPM + "slack-mcp-server",
		URL:         "https://github.com/community/slack-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-19"),
	},
	{
		Name:        "Google Calendar",
		FullName:    "google-calendar-mcp",
		Description: "Google Calendar integration",
		Category:    "productivity",
		Source:      domain.SourceCommunity,
		Publisher:   community,
		Metrics:     domain.Metrics{Downloads: 4800, Rating: 4.4},
		Features:    []string{"Event management", "Schedule lookup", "Reminders", "Calendar sharing"},
		Keywords:    []string{"google", "calendar", "schedule", "event", "productivity"},
		InstallRef:  RefNPM + "google-calendar-mcp",
		URL:         "https://github.com/community/google-calendar-mcp",
		Language:    "typescript",
		LastUpdated: date("2026-01-17"),
	},
}

// Skill collections published on GitHub.
const (
	awesomeSkills  = "ComposioHQ/awesome-claude-skills"
	infrastructure = "diet103/claude-code-infrastructure-showcase"
	superpowers    = "obra/superpowers"
	vercelSkills   = "vercel-labs/agent-skills"
)

// skill builds a community skill entry shipped in a collection.
func skill(name, publisher, category, description string, downloads int64, rating float64,
	features, useCases, pros, cons []string) domain.CatalogEntry {
	return domain.CatalogEntry{
		Name:        name,
		FullName:    publisher + "/" + name,
		Description: description,
		Category:    category,
		Source:      domain.SourceCommunity,
		Publisher:   publisher,
		Metrics:     domain.Metrics{Downloads: downloads, Rating: rating},
		Features:    features,
		UseCases:    useCases,
		Pros:        pros,
		Cons:        cons,
		Keywords:    domain.NameTokens(name),
		InstallRef:  RefSkill + publisher + "/" + name,
		URL:         "https://github.com/" + publisher,
	}
}

var skills = []domain.CatalogEntry{
	skill("docx", awesomeSkills, "document", "Word document processing", 28100, 4.8,
		[]string{"Create documents", "Edit documents", "Formatting", "Tables"},
		[]string{"office documents", "report generation", "contracts"},
		[]string{"Comprehensive", "Easy to use", "Good format support"},
		[]string{"Word format only"}),
	skill("pdf", awesomeSkills, "document", "PDF document processing", 25300, 4.7,
		[]string{"PDF reading", "PDF editing", "PDF merging", "PDF conversion"},
		[]string{"document viewing", "pdf editing", "archiving"},
		[]string{"Stable format", "Cross-platform", "Secure"},
		[]string{"Limited editing"}),
	skill("pptx", awesomeSkills, "document", "PowerPoint processing", 22400, 4.6,
		[]string{"Create slides", "Edit presentations", "Charts", "Templates"},
		[]string{"presentations", "report generation", "training material"},
		[]string{"Strong visuals", "Many templates", "Animation support"},
		[]string{"Large files"}),
	skill("xlsx", awesomeSkills, "document", "Excel spreadsheet processing", 26500, 4.7,
		[]string{"Data processing", "Formulas", "Charts", "Pivot tables"},
		[]string{"data analysis", "financial reports", "data cleanup"},
		[]string{"Strong calculations", "Rich charts", "Efficient data handling"},
		[]string{"Steep learning curve"}),
	skill("mcp-builder", awesomeSkills, "development", "Build MCP servers", 18500, 4.9,
		[]string{"MCP server generation", "API integration", "Protocol implementation", "Templates"},
		[]string{"mcp development", "api wrapping", "service integration"},
		[]string{"Highly automated", "Many templates", "Well documented"},
		[]string{"Requires programming experience"}),
	skill("skill-creator", awesomeSkills, "development", "Create custom skills", 15600, 4.8,
		[]string{"Skill templates", "Code generation", "Documentation", "Testing tools"},
		[]string{"skill development", "custom tools", "workflow creation"},
		[]string{"Lowers the barrier", "Many templates", "Community support"},
		[]string{"Requires understanding the skill layout"}),
	skill("webapp-testing", awesomeSkills, "testing", "Web application testing", 14200, 4.7,
		[]string{"Automated tests", "Performance tests", "UI tests", "API tests"},
		[]string{"web testing", "quality assurance", "ci/cd"},
		[]string{"Broad coverage", "Highly automated", "Detailed reports"},
		[]string{"Complex setup"}),
	skill("frontend-design", awesomeSkills, "design", "Frontend design", 8600, 4.6,
		[]string{"UI design", "Responsive layout", "Component design", "Style tuning"},
		[]string{"web design", "ui optimization", "frontend development"},
		[]string{"Consistent design", "Many components", "Easy to implement"},
		[]string{"Design is subjective"}),
	skill("connect-apps", awesomeSkills, "productivity", "Connect applications", 12300, 4.8,
		[]string{"App integration", "API connections", "Data sync", "Automated workflows"},
		[]string{"system integration", "data sync", "automation"},
		[]string{"Strong integrations", "Many apps supported", "Simple setup"},
		[]string{"Depends on third-party APIs"}),
	skill("file-organizer", awesomeSkills, "filesystem", "Organize files", 19800, 4.7,
		[]string{"File classification", "Duplicate detection", "Automatic sorting", "Batch rename"},
		[]string{"file management", "disk cleanup", "archiving"},
		[]string{"Highly automated", "Smart classification", "Saves time"},
		[]string{"Needs initial configuration"}),

	skill("backend-dev-guidelines", infrastructure, "development", "Backend development guidelines", 8900, 4.9,
		[]string{"API design", "Database access", "Security practices", "Performance tuning"},
		[]string{"backend development", "api development", "enterprise apps"},
		[]string{"Production tested", "Best practices", "Clear architecture"},
		[]string{"Mostly targets Node.js"}),
	skill("frontend-dev-guidelines", infrastructure, "development", "Frontend development guidelines", 9200, 4.8,
		[]string{"React patterns", "TypeScript conventions", "MUI components", "State management"},
		[]string{"frontend development", "react projects", "enterprise apps"},
		[]string{"Many components", "Type safe", "Performance focused"},
		[]string{"Tied to the React ecosystem"}),
	skill("skill-developer", infrastructure, "development", "Meta skill for developing skills", 7600, 4.9,
		[]string{"Skill architecture", "Development workflow", "Testing approach", "Release guide"},
		[]string{"skill development", "metaprogramming", "tool creation"},
		[]string{"Systematic", "Best practices", "Community standard"},
		[]string{"Requires deep understanding"}),
	skill("route-tester", infrastructure, "testing", "API route testing", 6800, 4.7,
		[]string{"Route tests", "Auth tests", "Performance tests", "Automation"},
		[]string{"api testing", "backend validation", "quality assurance"},
		[]string{"Thorough", "Automated", "Detailed reports"},
		[]string{"Needs API documentation"}),
	skill("error-tracking", infrastructure, "development", "Error tracking", 8100, 4.8,
		[]string{"Sentry integration", "Error monitoring", "Performance tracing", "Alerts"},
		[]string{"error monitoring", "production", "quality assurance"},
		[]string{"Real-time monitoring", "Detailed reports", "Simple integration"},
		[]string{"Depends on Sentry"}),

	skill("brainstorming", superpowers, "productivity", "Requirements brainstorming", 11200, 4.9,
		[]string{"Requirements analysis", "Option exploration", "Design refinement", "Risk assessment"},
		[]string{"project kickoff", "requirements analysis", "solution design"},
		[]string{"Systematic", "Thorough", "Reduces risk"},
		[]string{"Takes more time"}),
	skill("writing-plans", superpowers, "productivity", "Write implementation plans", 10500, 4.8,
		[]string{"Task breakdown", "Scheduling", "Dependency analysis", "Milestones"},
		[]string{"project management", "development planning", "progress tracking"},
		[]string{"Detailed plans", "Actionable", "Easy to track"},
		[]string{"Plans need upkeep"}),
	skill("test-driven-development", superpowers, "testing", "Test-driven development", 9800, 4.9,
		[]string{"TDD workflow", "Writing tests", "Refactoring", "Quality assurance"},
		[]string{"high quality development", "refactoring", "bug prevention"},
		[]string{"High code quality", "Fewer bugs", "Better design"},
		[]string{"Slower at first"}),
	skill("subagent-driven-development", superpowers, "development", "Subagent-driven development", 8700, 4.8,
		[]string{"Subtask delegation", "Parallel development", "Code review", "Progress tracking"},
		[]string{"large projects", "team collaboration", "rapid development"},
		[]string{"Fast", "Parallel", "Controlled quality"},
		[]string{"Needs coordination"}),
}

// githubRepos are the skill repositories indexed from GitHub.
var githubRepos = []domain.CatalogEntry{
	githubRepo("ComposioHQ", "awesome-claude-skills", "Curated collection of Claude skills", 12000),
	githubRepo("diet103", "claude-code-infrastructure-showcase", "Production skill infrastructure showcase", 7000),
	githubRepo("obra", "superpowers", "Core skills library for agentic development", 12000),
	githubRepo("yusufkaraaslan", "Skill_Seekers", "Turn documentation sites into skills", 500),
}

func githubRepo(owner, name, description string, stars int) domain.CatalogEntry {
	return domain.CatalogEntry{
		Name:        name,
		FullName:    owner + "/" + name,
		Description: description,
		Category:    "development",
		Source:      domain.SourceGitHub,
		Publisher:   owner,
		Metrics:     domain.Metrics{Stars: stars},
		Keywords:    domain.NameTokens(name),
		InstallRef:  RefGitHub + owner + "/" + name,
		URL:         "https://github.com/" + owner + "/" + name,
	}
}

// skillsIndex is the top of the skills store leaderboard, by installs.
var skillsIndex = []domain.CatalogEntry{
	indexed(1, "vercel-react-best-practices", "development", "React best practices", 39600, 4.9,
		[]string{"Component patterns", "State management", "Performance tuning", "TypeScript"},
		[]string{"react development", "frontend projects", "enterprise apps"},
		[]string{"Industry standard", "Fast", "Type safe"},
		[]string{"Steep learning curve"}),
	indexed(2, "web-design-guidelines", "design", "Web design guidelines", 30100, 4.8,
		[]string{"Design system", "Responsive design", "Accessibility", "UI components"},
		[]string{"web design", "ui/ux", "design systems"},
		[]string{"Consistent design", "Comprehensive", "Easy to maintain"},
		[]string{"Design is subjective"}),
	indexed(3, "remotion-best-practices", "development", "Remotion video best practices", 21500, 0, nil, nil, nil, nil),
	indexed(4, "frontend-design", "design", "Frontend design", 8600, 4.6, nil, nil, nil, nil),
	indexed(5, "skill-creator", "development", "Create custom skills", 4300, 0, nil, nil, nil, nil),
	indexed(6, "agent-browser", "web", "Let an agent drive the browser", 3100, 4.6,
		[]string{"Browser automation", "Page testing", "Data scraping", "UI testing"},
		[]string{"automated testing", "web scraping", "ui validation"},
		[]string{"Highly automated", "Thorough", "Saves time"},
		[]string{"Scripts need upkeep"}),
	indexed(7, "building-native-ui", "design", "Build native user interfaces", 3000, 0, nil, nil, nil, nil),
	indexed(8, "seo-audit", "web", "SEO audit", 2600, 4.7,
		[]string{"SEO analysis", "Ranking diagnosis", "Optimization advice", "Competitor analysis"},
		[]string{"seo optimization", "site promotion", "traffic growth"},
		[]string{"Thorough analysis", "Practical advice", "Visible results"},
		[]string{"Needs ongoing work"}),
	indexed(9, "better-auth-best-practices", "development", "Better Auth best practices", 2600, 0, nil, nil, nil, nil),
	indexed(10, "audit-website", "web", "Audit a website", 2500, 0, nil, nil, nil, nil),
}

func indexed(rank int, name, category, description string, downloads int64, rating float64,
	features, useCases, pros, cons []string) domain.CatalogEntry {
	return domain.CatalogEntry{
		Name:        name,
		Description: description,
		Category:    category,
		Source:      domain.SourceSkillsIndex,
		Publisher:   vercelSkills,
		Metrics:     domain.Metrics{Downloads: downloads, Rating: rating, Rank: rank},
		Features:    features,
		UseCases:    useCases,
		Pros:        pros,
		Cons:        cons,
		Keywords:    domain.NameTokens(name),
		InstallRef:  RefSkill + name,
		URL:         "https://skills.sh/s/" + name,
	}
}
