package ruleengine

// Bundled knowledge base for the rule-based engine: skill vocabulary,
// category keyword map, and the interview question banks. Everything here is
// static so the engine works with no network access.

// commonSkills is the fixed vocabulary scanned for in resume and job text
var commonSkills = []string{
	"javascript", "python", "java", "react", "node", "angular", "vue",
	"typescript", "sql", "mongodb", "aws", "docker", "kubernetes",
	"git", "agile", "scrum", "rest", "api", "html", "css", "c++",
	"php", "ruby", "golang", "rust", "swift", "kotlin", "flutter",
}

// skillCategory groups related skill keywords under a readable label
type skillCategory struct {
	Name     string
	Keywords []string
}

// skillCategories is ordered so category detection is deterministic
var skillCategories = []skillCategory{
	{"web development", []string{"javascript", "react", "node", "angular", "vue", "html", "css", "typescript", "next.js", "express"}},
	{"data analysis & science", []string{"python", "data", "analytics", "pandas", "numpy", "machine learning", "tensorflow", "sql"}},
	{"cloud & DevOps", []string{"aws", "cloud", "devops", "docker", "kubernetes", "azure", "gcp", "ci/cd"}},
	{"mobile development", []string{"react native", "flutter", "swift", "kotlin", "android", "ios"}},
	{"backend development", []string{"java", "spring", "django", "flask", "golang", "rust", "c#", ".net", "php", "laravel"}},
	{"database management", []string{"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "firebase"}},
	{"project management", []string{"agile", "scrum", "jira", "leadership", "team lead", "management"}},
}

// Technical question banks keyed by job domain
var technicalQuestions = map[string][]string{
	"web development": {
		"Explain the difference between client-side and server-side rendering. When would you choose one over the other?",
		"How do you handle state management in a large-scale web application?",
		"Describe your approach to optimizing web application performance.",
		"How would you implement authentication and authorization in a web application?",
		"Explain how you would design a RESTful API for a complex feature.",
	},
	"data": {
		"How would you approach cleaning and preprocessing a large, messy dataset?",
		"Explain the difference between supervised and unsupervised learning with examples.",
		"How do you handle missing data in your analysis?",
		"Describe a time you used data to drive a business decision.",
		"How would you validate the accuracy of a predictive model?",
	},
	"cloud": {
		"How would you design a highly available and scalable cloud architecture?",
		"Explain your experience with containerization and orchestration tools.",
		"How do you approach monitoring and logging in a cloud environment?",
		"Describe your strategy for managing infrastructure as code.",
		"How would you handle a security incident in a cloud environment?",
	},
	"mobile": {
		"How do you handle offline functionality in mobile applications?",
		"Describe your approach to testing mobile applications across different devices.",
		"How do you optimize mobile app performance and battery usage?",
		"Explain how you handle push notifications in your mobile apps.",
		"How do you ensure a consistent user experience across iOS and Android?",
	},
	"general": {
		"Describe a challenging technical problem you solved recently. What was your approach?",
		"How do you stay updated with the latest technologies and industry trends?",
		"Explain your approach to writing maintainable and scalable code.",
		"How do you handle technical debt in a project?",
		"Describe your experience working with version control and CI/CD pipelines.",
	},
}

var behavioralQuestions = []string{
	"Tell me about a time you had to work under a tight deadline. How did you manage it?",
	"Describe a situation where you disagreed with a team member. How did you resolve it?",
	"Tell me about a project that failed. What did you learn from it?",
	"How do you prioritize tasks when you have multiple competing deadlines?",
	"Describe a time when you had to learn a new technology quickly for a project.",
}

var situationalQuestions = []string{
	"If you were assigned a project with unclear requirements, how would you proceed?",
	"How would you handle a situation where a critical bug is found right before a release?",
	"If a stakeholder requested a feature that would compromise code quality, what would you do?",
	"How would you onboard a new team member to a complex codebase?",
	"If you noticed a colleague consistently missing deadlines, how would you address it?",
}

// interviewTips is the fixed advisory list attached to every evaluation
var interviewTips = []string{
	"Use the STAR method (Situation, Task, Action, Result) for behavioral questions",
	"Research the company and role thoroughly before the interview",
	"Prepare 3-5 specific examples from your experience that showcase different skills",
	"Practice answering questions aloud to improve fluency and confidence",
	"Ask thoughtful questions about the role and team at the end of the interview",
}
