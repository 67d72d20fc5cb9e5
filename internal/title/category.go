package title

import "strings"

const DefaultCategory = 0

type Category struct {
	Code     int
	Name     string
	Keywords []string
}

// Checked top to bottom. Keyword sets overlap, so the order decides the code.
var categories = []Category{
	{Code: 1, Name: "Software Development", Keywords: []string{
		"frontend", "backend", "full stack", ".net", "php", "java", "developer",
		"engineer", "react", "angular", "flutter", "node", "golang", "vue",
		"ios", "android", "mobile", "unity", "unreal",
	}},
	{Code: 2, Name: "Data Science/AI", Keywords: []string{
		"data", "machine learning", "ml", "ai", "bi", "analytics",
		"scientist", "bigdata", "nlp", "computer vision",
	}},
	{Code: 6, Name: "IT Support/Infrastructure", Keywords: []string{
		"it support", "network", "system admin", "infrastructure", "security",
		"devops", "cloud", "cybersecurity", "d365", "crm",
	}},
	{Code: 4, Name: "Management/Product", Keywords: []string{
		"product", "project manager", "scrum", "team lead", "owner", "manager",
	}},
	{Code: 3, Name: "Quality Assurance", Keywords: []string{
		"qa", "qc", "tester", "testing", "quality assurance", "quality control",
	}},
	{Code: 5, Name: "Engineering (Non-Software)", Keywords: []string{
		"mechanical", "electrical", "civil", "embedded", "biomedical",
		"electronics", "automation", "maintenance",
	}},
	{Code: 7, Name: "Business/Other", Keywords: []string{
		"marketing", "hr", "accountant", "sales", "liaison", "analyst", "purchasing",
	}},
}

func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		kw := make([]string, len(c.Keywords))
		copy(kw, c.Keywords)
		out = append(out, Category{Code: c.Code, Name: c.Name, Keywords: kw})
	}
	return out
}

// Categorize returns the code of the first category with a keyword contained in
// the normalized title, or DefaultCategory.
func Categorize(raw string) int {
	normalized := Normalize(raw)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(normalized, kw) {
				return c.Code
			}
		}
	}
	return DefaultCategory
}
