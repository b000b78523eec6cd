package classify

import "jobboard-engine/internal/domain"

type keywordGroup struct {
	label string
	any   []string
}

// Category groups are tested in this exact order; the first hit wins.
// Development sits first on purpose: the upstream feed is dominated by
// engineering roles and ambiguous titles should land there.
var categoryGroups = []keywordGroup{
	{domain.CategoryDevelopment, []string{
		"developer", "engineer", "software", "frontend", "front-end",
		"backend", "back-end", "fullstack", "full stack", "programmer",
		"react", "javascript", "typescript", "python", "golang", "node",
		"php", "ruby", "mobile", "ios", "android",
	}},
	{domain.CategoryData, []string{
		"data", "analytics", "analyst", "machine learning", "scientist",
		"etl", "business intelligence",
	}},
	{domain.CategoryDesign, []string{
		"design", "designer", "ux", "user interface", "user experience",
		"graphic", "figma", "creative",
	}},
	{domain.CategoryMarketing, []string{
		"marketing", "seo", "content", "social media", "growth",
		"copywriter", "brand",
	}},
	{domain.CategoryProduct, []string{
		"product manager", "product owner", "product",
	}},
	{domain.CategorySales, []string{
		"sales", "account executive", "business development",
		"account manager",
	}},
	{domain.CategorySupport, []string{
		"support", "customer success", "customer service", "helpdesk",
		"help desk",
	}},
	{domain.CategoryHR, []string{
		"human resources", "recruiter", "recruiting", "talent",
		"people operations",
	}},
	{domain.CategoryFinance, []string{
		"finance", "accounting", "accountant", "payroll", "bookkeeper",
	}},
	{domain.CategoryDevOps, []string{
		"devops", "sre", "site reliability", "infrastructure", "cloud",
		"kubernetes", "terraform", "platform",
	}},
	{domain.CategoryQA, []string{
		"quality assurance", "tester", "testing", "test automation",
	}},
	{domain.CategorySecurity, []string{
		"security", "infosec", "penetration", "appsec",
	}},
}

// Level groups, also order-sensitive: Senior is tested before Lead, so a
// title carrying both resolves to Senior. Changing this order changes
// observable behavior.
var (
	seniorWords = []string{"senior", "sr."}
	leadWords   = []string{"lead", "staff", "chief", "principal", "head of"}
	entryWords  = []string{"junior", "jr.", "entry", "intern", "graduate", "trainee"}
)

// Generic fallback requirements, used when a description yields no usable
// sentences. Always exactly three entries.
var fallbackRequirements = []string{
	"Proven experience in a similar role",
	"Strong communication and collaboration skills",
	"Ability to work independently in a remote environment",
}
